package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	// claimQuery reserves the lowest-numbered available room of a type in one
	// statement. SKIP LOCKED lets concurrent claims move on to the next room.
	claimQuery = `UPDATE rooms
SET status = :reserved, modified_at = :modified_at, modified_by = :modified_by
WHERE id = (
	SELECT id FROM rooms
	WHERE room_type_id = :room_type_id AND status = :available
	ORDER BY room_number ASC
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
RETURNING id, room_number, floor, room_type_id, status`

	countByStatusQuery = `SELECT status, COUNT(id) AS total FROM rooms GROUP BY status`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ClaimAvailableTx(ctx context.Context, tx *sqlx.Tx, roomTypeID, user string) (model.Room, error)
	TransitionStatus(ctx context.Context, id string, from, to model.Status, user string) (bool, error)
	TransitionStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to model.Status, user string) (bool, error)
	CountByStatus(ctx context.Context) (map[model.Status]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ClaimAvailableTx returns a zero Room when no room of the type is available.
func (r *repositoryImpl) ClaimAvailableTx(ctx context.Context, tx *sqlx.Tx, roomTypeID, user string) (room model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ClaimAvailableTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, claimQuery)

	stmt, err := tx.PrepareNamedContext(ctx, claimQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return room, fmt.Errorf("failed to prepare room claim: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &room, map[string]any{
		"reserved":               model.StatusReserved,
		"available":              model.StatusAvailable,
		"room_type_id":           roomTypeID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return room, fmt.Errorf("failed to claim room: %w", err)
	}

	return room, nil
}

func statusChange(id string, from, to model.Status, user string) (map[string]any, gDto.FilterGroup) {
	mod := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: "from_status", Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorEq},
		},
	}

	return mod, filter
}

// TransitionStatus moves a room from one status to another only if it is
// still in from. It reports false when the room was not in from.
func (r *repositoryImpl) TransitionStatus(ctx context.Context, id string, from, to model.Status, user string) (bool, error) {
	mod, filter := statusChange(id, from, to, user)

	affected, err := r.UpdateCount(ctx, mod, filter)
	if err != nil {
		return false, fmt.Errorf("failed to transition room status: %w", err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) TransitionStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to model.Status, user string) (bool, error) {
	mod, filter := statusChange(id, from, to, user)

	affected, err := r.UpdateCountTx(ctx, tx, mod, filter)
	if err != nil {
		return false, fmt.Errorf("failed to transition room status: %w", err)
	}

	return affected > 0, nil
}

func (r *repositoryImpl) CountByStatus(ctx context.Context) (res map[model.Status]int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByStatusQuery)

	var rows []model.StatusCount
	if err = r.db.Read.SelectContext(ctx, &rows, countByStatusQuery); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	res = make(map[model.Status]int, len(model.Statuses))
	for _, status := range model.Statuses {
		res[status] = 0
	}

	for _, row := range rows {
		res[row.Status] = row.Total
	}

	return res, nil
}
