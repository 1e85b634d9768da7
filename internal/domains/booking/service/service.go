package service

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	roomTypeRepo "frontdesk/internal/domains/roomtype/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = model.CachePrefix + "get"
	cacheGetAllBooking = model.CachePrefix + "gets"
	cacheCountBooking  = model.CachePrefix + "count"

	errBookingNotFound = "booking not found"
	codeLength         = 8
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetTodayArrivals(ctx context.Context) ([]dto.BookingResponse, error)
	GetTodayDepartures(ctx context.Context) ([]dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	guestRepo    guestRepo.Guest
	roomRepo     roomRepo.Room
	roomTypeRepo roomTypeRepo.RoomType
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	publisher    kafka.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	guestRepo guestRepo.Guest,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher kafka.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		publisher:    publisher,
		otel:         otel,
	}
}

// invalidate drops cached bookings together with every other cache a
// booking mutation can make stale.
func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CachePrefix)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

// publish emits a lifecycle event once the transaction has committed. Delivery failures are logged only.
func (s *serviceImpl) publish(ctx context.Context, eventType model.EventType, booking model.Booking) {
	event := model.NewEvent(eventType, booking, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("booking", booking.ID).Str("event", string(eventType)).Msg("failed to publish booking event")
		}
	}()
}

func parseStay(checkIn, checkOut string) (in, out gModel.Date, err error) {
	if in, err = gModel.ParseDate(checkIn); err != nil {
		return in, out, failure.BadRequest(err)
	}

	if out, err = gModel.ParseDate(checkOut); err != nil {
		return in, out, failure.BadRequest(err)
	}

	if !in.Before(out) {
		return in, out, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	return in, out, nil
}

func newBookingCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")

	return model.NewCode(strings.ToUpper(hex[:codeLength]))
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	source, ok := model.ParseSource(req.BookingSource)
	if !ok {
		return res, failure.BadRequestFromString("unknown booking source: " + req.BookingSource)
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(req.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found")
	}

	adults, children := req.GuestCount()
	if !roomType.Fits(adults, children) {
		return res, failure.BadRequestFromString(fmt.Sprintf("room type %s fits at most %d guests", roomType.Name, roomType.Capacity))
	}

	now := timezone.Now()
	booking := model.Booking{
		ID:            uuid.NewString(),
		BookingCode:   newBookingCode(),
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Adults:        adults,
		Children:      children,
		Status:        model.StatusConfirmed,
		BookingSource: source,
		Metadata:      gModel.NewMetadata(now, user),
	}
	booking.TotalAmount = money.Multiply(roomType.BasePrice, booking.Nights())

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		guest, err := s.findOrCreateGuest(ctx, tx, req, user)
		if err != nil {
			return err
		}

		room, err := s.roomRepo.ClaimAvailableTx(ctx, tx, roomType.ID, user)
		if err != nil {
			return fmt.Errorf("failed to claim room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.Conflict("no " + roomType.Name + " room is available")
		}

		booking.GuestID = guest.ID
		booking.GuestName = guest.Name
		booking.GuestPhone = guest.Phone
		booking.RoomID = room.ID
		booking.RoomNumber = room.RoomNumber
		booking.RoomTypeID = room.RoomTypeID

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)
	s.invalidate(ctx, roomModel.CachePrefix, guestModel.CachePrefix)
	s.publish(ctx, model.EventCreated, booking)

	return res, nil
}

// findOrCreateGuest looks the guest up by phone, the natural key, and inserts
// one when absent. An existing guest keeps its stored name.
func (s *serviceImpl) findOrCreateGuest(ctx context.Context, tx *sqlx.Tx, req dto.CreateBookingRequest, user string) (guestModel.Guest, error) {
	guest, err := s.guestRepo.GetTx(ctx, tx, shared.FilterByField(guestModel.FieldPhone, req.GuestPhone, guestModel.TableName))
	if err != nil {
		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID != constant.Empty {
		return guest, nil
	}

	guest = guestModel.Guest{
		ID:       uuid.NewString(),
		Name:     req.GuestName,
		Phone:    req.GuestPhone,
		Email:    req.GuestEmail,
		Metadata: gModel.NewMetadata(timezone.Now(), user),
	}

	if err := s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
		return guest, fmt.Errorf("failed to insert guest: %w", err)
	}

	return guest, nil
}

// lockBooking reads the booking row FOR UPDATE inside tx.
func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(errBookingNotFound)
	}

	return booking, nil
}

// moveRoom applies a lifecycle room transition and fails when the room is
// no longer in the expected status.
func (s *serviceImpl) moveRoom(ctx context.Context, tx *sqlx.Tx, roomID string, from, to roomModel.Status, user string) error {
	moved, err := s.roomRepo.TransitionStatusTx(ctx, tx, roomID, from, to, user)
	if err != nil {
		return fmt.Errorf("failed to update room status: %w", err)
	}

	if !moved {
		return failure.InvalidState(fmt.Sprintf("room is not %s", from))
	}

	return nil
}

func (s *serviceImpl) setStatus(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, next model.Status, extra map[string]any, user string) error {
	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	for field, value := range extra {
		fields[field] = value
	}

	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(model.StatusCheckedIn) {
			return failure.InvalidState("cannot check in a " + booking.Status.String() + " booking")
		}

		if gModel.DateOf(timezone.Today()).Before(booking.CheckInDate) {
			return failure.InvalidState("check-in is not allowed before " + booking.CheckInDate.String())
		}

		now := timezone.Now()
		if err := s.setStatus(ctx, tx, &booking, model.StatusCheckedIn, map[string]any{model.FieldActualCheckIn: now}, user); err != nil {
			return err
		}

		booking.ActualCheckIn = &now

		return s.moveRoom(ctx, tx, booking.RoomID, roomModel.StatusReserved, roomModel.StatusOccupied, user)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to check in")

		return res, err
	}

	res.FromModel(booking)
	s.invalidate(ctx, roomModel.CachePrefix)
	s.publish(ctx, model.EventCheckedIn, booking)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(model.StatusCheckedOut) {
			return failure.InvalidState("cannot check out a " + booking.Status.String() + " booking")
		}

		now := timezone.Now()
		if err := s.setStatus(ctx, tx, &booking, model.StatusCheckedOut, map[string]any{model.FieldActualCheckOut: now}, user); err != nil {
			return err
		}

		booking.ActualCheckOut = &now

		return s.moveRoom(ctx, tx, booking.RoomID, roomModel.StatusOccupied, roomModel.StatusDirty, user)
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to check out")

		return res, err
	}

	res.FromModel(booking)
	s.invalidate(ctx, roomModel.CachePrefix)
	s.publish(ctx, model.EventCheckedOut, booking)

	return res, nil
}

// Cancel is only allowed before check-in. A room still reserved for the
// booking is released.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(model.StatusCancelled) {
			return failure.InvalidState("cannot cancel a " + booking.Status.String() + " booking")
		}

		if err := s.setStatus(ctx, tx, &booking, model.StatusCancelled, nil, user); err != nil {
			return err
		}

		if _, err := s.roomRepo.TransitionStatusTx(ctx, tx, booking.RoomID, roomModel.StatusReserved, roomModel.StatusAvailable, user); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to cancel booking")

		return res, err
	}

	res.FromModel(booking)
	s.invalidate(ctx, roomModel.CachePrefix)
	s.publish(ctx, model.EventCancelled, booking)

	return res, nil
}

// Update changes guest details, dates, party size or source of a booking that
// has not been checked in or out. New dates are re-priced with the room type
// price. The party size is not checked against capacity again and the room is
// kept.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	source, ok := model.ParseSource(req.BookingSource)
	if !ok {
		return res, failure.BadRequestFromString("unknown booking source: " + req.BookingSource)
	}

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.Status == model.StatusCheckedIn || booking.Status == model.StatusCheckedOut {
			return failure.InvalidState("cannot update a " + booking.Status.String() + " booking")
		}

		if err := s.updateGuest(ctx, tx, &booking, req, user); err != nil {
			return err
		}

		fields, err := s.bookingChanges(ctx, tx, &booking, req, user)
		if err != nil {
			return err
		}

		if req.BookingSource != constant.Empty {
			fields[model.FieldBookingSource] = source
			booking.BookingSource = source
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to update booking")

		return res, err
	}

	res.FromModel(booking)
	s.invalidate(ctx, guestModel.CachePrefix)

	return res, nil
}

func (s *serviceImpl) updateGuest(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, req dto.UpdateBookingRequest, user string) error {
	if req.GuestName == constant.Empty && req.GuestPhone == constant.Empty {
		return nil
	}

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.GuestName != constant.Empty {
		fields[guestModel.FieldName] = req.GuestName
		booking.GuestName = req.GuestName
	}

	if req.GuestPhone != constant.Empty {
		fields[guestModel.FieldPhone] = req.GuestPhone
		booking.GuestPhone = req.GuestPhone
	}

	err := s.guestRepo.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return failure.Conflict("another guest already uses this phone")
	}

	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}

	return nil
}

func (s *serviceImpl) bookingChanges(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, req dto.UpdateBookingRequest, user string) (map[string]any, error) {
	now := timezone.Now()

	fields := map[string]any{
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	booking.ModifiedAt = now
	booking.ModifiedBy = user

	if req.Adults != nil {
		fields[model.FieldAdults] = *req.Adults
		booking.Adults = *req.Adults
	}

	if req.Children != nil {
		fields[model.FieldChildren] = *req.Children
		booking.Children = *req.Children
	}

	if req.CheckInDate == constant.Empty && req.CheckOutDate == constant.Empty {
		return fields, nil
	}

	checkIn, checkOut := booking.CheckInDate.String(), booking.CheckOutDate.String()
	if req.CheckInDate != constant.Empty {
		checkIn = req.CheckInDate
	}

	if req.CheckOutDate != constant.Empty {
		checkOut = req.CheckOutDate
	}

	in, out, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	roomType, err := s.roomTypeRepo.GetTx(ctx, tx, shared.FilterByID(booking.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	booking.CheckInDate = in
	booking.CheckOutDate = out
	booking.TotalAmount = money.Multiply(roomType.BasePrice, booking.Nights())

	fields[model.FieldCheckInDate] = in
	fields[model.FieldCheckOutDate] = out
	fields[model.FieldTotalAmount] = booking.TotalAmount

	return fields, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if maxLimit := s.cfg.Hotel.BookingMaxLimit; maxLimit > 0 && (req.Limit <= 0 || req.Limit > maxLimit) {
		req.Limit = maxLimit
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// today lists bookings whose dateField is today and that are in status,
// ordered by room number.
func (s *serviceImpl) today(ctx context.Context, dateField string, status model.Status) ([]dto.BookingResponse, error) {
	filter := dto.TodayFilter(dateField, status)

	params := gDto.QueryParams{
		Limit:   s.cfg.Hotel.TodayListLimit,
		SortBy:  model.RoomTable + "." + model.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("field", dateField).Msg("failed to list today's bookings")

		return nil, fmt.Errorf("failed to list today's bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) GetTodayArrivals(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodayArrivals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.today(ctx, model.FieldCheckInDate, model.StatusConfirmed)
}

func (s *serviceImpl) GetTodayDepartures(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodayDepartures")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.today(ctx, model.FieldCheckOutDate, model.StatusCheckedIn)
}

// Delete removes a checked out or cancelled booking.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound(errBookingNotFound)
	}

	if !booking.Status.Terminal() {
		return failure.InvalidState("only checked out or cancelled bookings can be deleted")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("booking still has bills or feedback")
		}

		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}
