package service

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/bill/model"
	"frontdesk/internal/domains/bill/model/dto"
	"frontdesk/internal/domains/bill/repository"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBill    = model.CachePrefix + "get"
	cacheGetAllBill = model.CachePrefix + "gets"
	cacheCountBill  = model.CachePrefix + "count"

	errBillNotFound = "bill not found"
	errItemNotFound = "bill item not found"
)

type Bill interface {
	Create(ctx context.Context, req dto.CreateBillRequest) (dto.BillResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBillsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
	GetByBooking(ctx context.Context, bookingID string) ([]dto.BillResponse, error)
	GetByGuest(ctx context.Context, guestID string) ([]dto.BillResponse, error)
	UpdateCharges(ctx context.Context, req dto.UpdateChargesRequest, id string) (dto.BillResponse, error)
	UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	AddItem(ctx context.Context, req dto.CreateItemRequest, billID string) (dto.BillResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, billID, itemID string) (dto.BillResponse, error)
	DeleteItem(ctx context.Context, billID, itemID string) (dto.BillResponse, error)
}

type serviceImpl struct {
	repo        repository.Bill
	itemRepo    repository.Item
	bookingRepo bookingRepo.Booking
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Bill,
	itemRepo repository.Item,
	bookingRepo bookingRepo.Booking,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Bill {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}

func itemsOf(billID string) gDto.FilterGroup {
	return shared.FilterByField(model.FieldBillID, billID, model.ItemTableName)
}

var itemOrder = gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found")
	}

	bill := req.ToModel(booking.GuestID, user)
	bill.BookingCode = booking.BookingCode
	bill.GuestName = booking.GuestName

	if err = s.repo.Insert(ctx, bill); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("bill number already exists, retry")
		}

		log.Error().Err(err).Msg("failed to create bill")

		return res, fmt.Errorf("failed to create bill: %w", err)
	}

	res.FromModel(bill, nil)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBill, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bills")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bills")

		return res, err
	}

	bills, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(bills, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bills to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBill, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return total, fmt.Errorf("failed to count bills: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bill count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBill, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bill, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return res, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return res, failure.NotFound(errBillNotFound)
	}

	items, err := s.itemRepo.GetAll(ctx, itemOrder, itemsOf(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill items")

		return res, fmt.Errorf("failed to get bill items: %w", err)
	}

	res.FromModel(bill, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bill to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res []dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.listBy(ctx, model.FieldBookingID, bookingID)
}

func (s *serviceImpl) GetByGuest(ctx context.Context, guestID string) (res []dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.listBy(ctx, model.FieldGuestID, guestID)
}

func (s *serviceImpl) listBy(ctx context.Context, field, value string) ([]dto.BillResponse, error) {
	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	bills, err := s.repo.GetAll(ctx, params, shared.FilterByField(field, value, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to get bills")

		return nil, fmt.Errorf("failed to get bills: %w", err)
	}

	return dto.FromModels(bills), nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status, ok := model.ParsePaymentStatus(req.PaymentStatus)
	if !ok {
		return failure.BadRequestFromString("payment status must be one of pending, paid, partial")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check bill existence")

		return fmt.Errorf("failed to check bill existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errBillNotFound)
	}

	fields := map[string]any{
		model.FieldPaymentStatus: status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.PaymentMethod != constant.Empty {
		fields[model.FieldPaymentMethod] = req.PaymentMethod
	}

	if req.TransactionID != constant.Empty {
		fields[model.FieldTransactionID] = req.TransactionID
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// recalculate locks the bill, runs mutate inside the same transaction and
// rewrites the charges and total from the items read after mutate.
func (s *serviceImpl) recalculate(ctx context.Context, billID string, mutate func(tx *sqlx.Tx, bill *model.Bill, user string) error) (res dto.BillResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(billID, model.FieldID, model.TableName)

	var (
		bill  model.Bill
		items []model.Item
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		bill, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock bill: %w", err)
		}

		if bill.ID == constant.Empty {
			return failure.NotFound(errBillNotFound)
		}

		if err = mutate(tx, &bill, user); err != nil {
			return err
		}

		items, err = s.itemRepo.GetAllTx(ctx, tx, itemOrder, itemsOf(billID))
		if err != nil {
			return fmt.Errorf("failed to get bill items: %w", err)
		}

		bill.TotalAmount = bill.Total(items)
		bill.ModifiedAt = timezone.Now()
		bill.ModifiedBy = user

		return s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldRoomCharges:   bill.RoomCharges,
			model.FieldFoodCharges:   bill.FoodCharges,
			model.FieldOtherCharges:  bill.OtherCharges,
			model.FieldTaxAmount:     bill.TaxAmount,
			model.FieldTotalAmount:   bill.TotalAmount,
			constant.FieldModifiedAt: bill.ModifiedAt,
			constant.FieldModifiedBy: user,
		}, filter)
	})
	if err != nil {
		log.Error().Err(err).Str("bill", billID).Msg("failed to recalculate bill")

		return res, err
	}

	res.FromModel(bill, items)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) UpdateCharges(ctx context.Context, req dto.UpdateChargesRequest, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCharges")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return res, failure.BadRequestFromString("no charges to update")
	}

	return s.recalculate(ctx, id, func(_ *sqlx.Tx, bill *model.Bill, _ string) error {
		req.Apply(bill)

		return nil
	})
}

func (s *serviceImpl) AddItem(ctx context.Context, req dto.CreateItemRequest, billID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	itemType, ok := model.ParseItemType(req.ItemType)
	if !ok {
		return res, failure.BadRequestFromString("item type must be one of room, food, service, other")
	}

	return s.recalculate(ctx, billID, func(tx *sqlx.Tx, bill *model.Bill, user string) error {
		if err := s.itemRepo.InsertTx(ctx, tx, req.ToModel(bill.ID, itemType, user)); err != nil {
			return fmt.Errorf("failed to add bill item: %w", err)
		}

		return nil
	})
}

// ownedItem loads an item and checks that it belongs to the bill.
func (s *serviceImpl) ownedItem(ctx context.Context, tx *sqlx.Tx, billID, itemID string) (model.Item, error) {
	item, err := s.itemRepo.GetTx(ctx, tx, shared.FilterByID(itemID, model.FieldID, model.ItemTableName))
	if err != nil {
		return item, fmt.Errorf("failed to get bill item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound(errItemNotFound)
	}

	if item.BillID != billID {
		return item, failure.BadRequestFromString("bill item does not belong to this bill")
	}

	return item, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, billID, itemID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return res, failure.BadRequestFromString("no item fields to update")
	}

	if req.ItemType != constant.Empty {
		if _, ok := model.ParseItemType(req.ItemType); !ok {
			return res, failure.BadRequestFromString("item type must be one of room, food, service, other")
		}
	}

	return s.recalculate(ctx, billID, func(tx *sqlx.Tx, _ *model.Bill, user string) error {
		item, err := s.ownedItem(ctx, tx, billID, itemID)
		if err != nil {
			return err
		}

		req.Apply(&item)

		err = s.itemRepo.UpdateTx(ctx, tx, map[string]any{
			model.FieldItemType:      item.ItemType,
			model.FieldDescription:   item.Description,
			model.FieldUnitPrice:     item.UnitPrice,
			model.FieldQuantity:      item.Quantity,
			model.FieldTotalPrice:    item.TotalPrice,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(itemID, model.FieldID, model.ItemTableName))
		if err != nil {
			return fmt.Errorf("failed to update bill item: %w", err)
		}

		return nil
	})
}

func (s *serviceImpl) DeleteItem(ctx context.Context, billID, itemID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.recalculate(ctx, billID, func(tx *sqlx.Tx, _ *model.Bill, _ string) error {
		if _, err := s.ownedItem(ctx, tx, billID, itemID); err != nil {
			return err
		}

		if err := s.itemRepo.DeleteTx(ctx, tx, shared.FilterByID(itemID, model.FieldID, model.ItemTableName)); err != nil {
			return fmt.Errorf("failed to delete bill item: %w", err)
		}

		return nil
	})
}
