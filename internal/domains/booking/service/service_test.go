package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	pgMocks "frontdesk/infras/postgres/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomTypeMocks "frontdesk/internal/domains/roomtype/mocks"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

const standardTypeID = "0b8f3c1e-8f1a-4a57-9a53-2b4f1f7d0c11"

var standardRoomType = roomTypeModel.RoomType{ID: standardTypeID, Name: "Standard", BasePrice: 2000, Capacity: 2}

type fixture struct {
	svc          service.Booking
	repo         *bookingMocks.MockBooking
	guestRepo    *guestMocks.MockGuest
	roomRepo     *roomMocks.MockRoom
	roomTypeRepo *roomTypeMocks.MockRoomType
	transactor   *pgMocks.MockTransactor
	cache        *cacheMocks.MockRedisCache
	publisher    *kafkaMocks.MockPublisher
	writes       *cacheMocks.Writes
	otel         *mocks.Recorder
	events       chan model.Event
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		guestRepo:    guestMocks.NewMockGuest(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		transactor:   pgMocks.NewMockTransactor(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		publisher:    kafkaMocks.NewMockPublisher(ctrl),
		writes:       cacheMocks.NewWrites(),
		otel:         mocks.NewRecorder(),
		events:       make(chan model.Event, 8),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.TodayListLimit = 100
	cfg.Kafka.Topics.BookingEvents = "booking-events"

	f.svc = service.New(f.repo, f.guestRepo, f.roomRepo, f.roomTypeRepo, f.transactor, cfg, f.cache, f.publisher, f.otel)

	f.transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	f.writes.Record(f.cache)

	f.publisher.EXPECT().
		Publish(gomock.Any(), "booking-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			for _, message := range messages {
				event, ok := message.Value.(model.Event)
				if !ok {
					continue
				}

				select {
				case f.events <- event:
				default:
				}
			}

			return nil
		}).
		AnyTimes()

	return f
}

func (f fixture) nextEvent(t *testing.T) model.Event {
	t.Helper()

	select {
	case event := <-f.events:
		return event
	case <-time.After(time.Second):
		t.Fatal("no booking event published")

		return model.Event{}
	}
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "reception-1")
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:    "Ana Lima",
		GuestPhone:   "+5511999990000",
		RoomTypeID:   standardTypeID,
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-03",
		Adults:       2,
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantKind  string
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "prices two nights of a standard room",
			req:  createRequest,
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
				f.guestRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)
				f.guestRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, guest guestModel.Guest) error {
						assert.Equal(t, "+5511999990000", guest.Phone)

						return nil
					})
				f.roomRepo.EXPECT().
					ClaimAvailableTx(gomock.Any(), gomock.Any(), standardTypeID, "reception-1").
					Return(roomModel.Room{ID: "room-101", RoomNumber: "101", RoomTypeID: standardTypeID, Status: roomModel.StatusReserved}, nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, model.SourceWebsite, booking.BookingSource)
						assert.Equal(t, "room-101", booking.RoomID)
						assert.Regexp(t, `^BK[0-9A-F]{8}$`, booking.BookingCode)

						return nil
					})
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.InDelta(t, 4000.0, res.TotalAmount, 0.001)
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, "101", res.RoomNumber)
				assert.Equal(t, "Ana Lima", res.GuestName)
			},
		},
		{
			name: "existing guest is reused",
			req:  createRequest,
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
				f.guestRepo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-1", Name: "Ana L.", Phone: "+5511999990000"}, nil)
				f.roomRepo.EXPECT().
					ClaimAvailableTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-101", RoomNumber: "101"}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "guest-1", res.GuestID)
				assert.Equal(t, "Ana L.", res.GuestName)
			},
		},
		{
			name: "check-out not after check-in",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.CheckOutDate = req.CheckInDate

				return req
			},
			setupMock: func(fixture) {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "malformed date",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.CheckInDate = "01/06/2024"

				return req
			},
			setupMock: func(fixture) {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "unknown source",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.BookingSource = "fax"

				return req
			},
			setupMock: func(fixture) {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "unknown room type",
			req:  createRequest,
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "party larger than capacity",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.Children = 1

				return req
			},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
			},
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "no available room rolls back without inserting",
			req:  createRequest,
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
				f.guestRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
				f.roomRepo.EXPECT().ClaimAvailableTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "claim error",
			req:  createRequest,
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
				f.guestRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil)
				f.roomRepo.EXPECT().
					ClaimAvailableTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("connection reset"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(userCtx(), tt.req())

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			f.writes.Wait(t, model.CachePrefix, roomModel.CachePrefix, guestModel.CachePrefix)
			tt.check(t, res)
		})
	}
}

// roomClaimer hands out each room at most once, like the conditional
// UPDATE ... FOR UPDATE SKIP LOCKED statement.
type roomClaimer struct {
	mu        sync.Mutex
	available []roomModel.Room
}

func (c *roomClaimer) claim(_ context.Context, _ *sqlx.Tx, _, _ string) (roomModel.Room, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.available) == 0 {
		return roomModel.Room{}, nil
	}

	room := c.available[0]
	c.available = c.available[1:]

	return room, nil
}

func TestBookingService_Create_ConcurrentSoleRoom(t *testing.T) {
	f := newFixture(t)
	claimer := &roomClaimer{available: []roomModel.Room{{ID: "room-101", RoomNumber: "101"}}}

	f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoomType, nil).AnyTimes()
	f.guestRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1"}, nil).AnyTimes()
	f.roomRepo.EXPECT().ClaimAvailableTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(claimer.claim).Times(2)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	const callers = 2

	var wg sync.WaitGroup

	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = f.svc.Create(userCtx(), createRequest())
		}()
	}

	wg.Wait()
	f.writes.Wait(t, model.CachePrefix, roomModel.CachePrefix, guestModel.CachePrefix)

	succeeded, conflicted := 0, 0

	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case failure.IsKind(err, failure.KindConflict):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
}

func bookingIn(status model.Status, checkIn gModel.Date) model.Booking {
	return model.Booking{
		ID:           "booking-1",
		RoomID:       "room-101",
		RoomTypeID:   standardTypeID,
		GuestID:      "guest-1",
		CheckInDate:  checkIn,
		CheckOutDate: gModel.DateOf(checkIn.AddDate(0, 0, 2)),
		Status:       status,
	}
}

func today() gModel.Date {
	return gModel.DateOf(timezone.Today())
}

func TestBookingService_CheckIn(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  string
	}{
		{
			name: "confirmed booking arriving today",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])
						assert.Contains(t, fields, model.FieldActualCheckIn)

						return nil
					})
				f.roomRepo.EXPECT().
					TransitionStatusTx(gomock.Any(), gomock.Any(), "room-101", roomModel.StatusReserved, roomModel.StatusOccupied, gomock.Any()).
					Return(true, nil)
			},
		},
		{
			name: "second check-in",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCheckedIn, today()), nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name: "before the planned date",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingIn(model.StatusConfirmed, gModel.DateOf(timezone.Today().AddDate(0, 0, 3))), nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name: "room no longer reserved",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomRepo.EXPECT().TransitionStatusTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name: "missing booking",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CheckIn(userCtx(), "booking-1")

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			f.writes.Wait(t, model.CachePrefix, roomModel.CachePrefix)
			assert.Equal(t, "checked_in", res.Status)
			assert.NotEmpty(t, res.ActualCheckIn)

			event := f.nextEvent(t)
			assert.Equal(t, model.EventCheckedIn, event.Type)
			assert.Equal(t, model.StatusCheckedIn, event.Status)
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	t.Run("checked in booking leaves the room dirty", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCheckedIn, today()), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().
			TransitionStatusTx(gomock.Any(), gomock.Any(), "room-101", roomModel.StatusOccupied, roomModel.StatusDirty, gomock.Any()).
			Return(true, nil)

		res, err := f.svc.CheckOut(userCtx(), "booking-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix, roomModel.CachePrefix)
		assert.Equal(t, "checked_out", res.Status)
		assert.NotEmpty(t, res.ActualCheckOut)
	})

	t.Run("confirmed booking cannot check out", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)

		_, err := f.svc.CheckOut(userCtx(), "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("confirmed booking frees its room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().
			TransitionStatusTx(gomock.Any(), gomock.Any(), "room-101", roomModel.StatusReserved, roomModel.StatusAvailable, gomock.Any()).
			Return(true, nil)

		res, err := f.svc.Cancel(userCtx(), "booking-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix, roomModel.CachePrefix)
		assert.Equal(t, "cancelled", res.Status)
	})

	for _, status := range []model.Status{model.StatusCheckedIn, model.StatusCheckedOut, model.StatusCancelled} {
		t.Run(string(status)+" booking cannot be cancelled", func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(status, today()), nil)

			_, err := f.svc.Cancel(userCtx(), "booking-1")

			assert.True(t, failure.IsKind(err, failure.KindInvalidState))
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	t.Run("new dates are re-priced", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingIn(model.StatusConfirmed, gModel.NewDate(2024, time.June, 1)), nil)
		f.roomTypeRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(standardRoomType, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.InDelta(t, 8000.0, fields[model.FieldTotalAmount], 0.001)

				return nil
			})

		res, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{CheckOutDate: "2024-06-05"}, "booking-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix, guestModel.CachePrefix)
		assert.Equal(t, 4, res.Nights)
	})

	t.Run("guest phone goes to the guest row", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)
		f.guestRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, "+5511888880000", fields[guestModel.FieldPhone])

				return nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{GuestPhone: "+5511888880000"}, "booking-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix, guestModel.CachePrefix)
		assert.Equal(t, "+5511888880000", res.GuestPhone)
	})

	t.Run("dates out of order", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingIn(model.StatusConfirmed, gModel.NewDate(2024, time.June, 1)), nil)

		_, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{CheckOutDate: "2024-05-30"}, "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
	})

	t.Run("checked in booking is frozen", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCheckedIn, today()), nil)

		_, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{GuestName: "Ana"}, "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidState))

		traced := f.otel.Errors()
		require.NotEmpty(t, traced)
		assert.True(t, failure.IsKind(traced[len(traced)-1], failure.KindInvalidState))
	})

	t.Run("checked out booking is frozen", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCheckedOut, today()), nil)

		_, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{GuestPhone: "+5511888880000"}, "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("cancelled booking can still be corrected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCancelled, today()), nil)
		f.guestRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{GuestName: "Ana"}, "booking-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix, guestModel.CachePrefix)
		assert.Equal(t, "Ana", res.GuestName)
		assert.Equal(t, "cancelled", res.Status)
		assert.Empty(t, f.otel.Errors())
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{}, "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("active booking is kept", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusConfirmed, today()), nil)

		err := f.svc.Delete(userCtx(), "booking-1")

		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("cancelled booking is deleted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingIn(model.StatusCancelled, today()), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(userCtx(), "booking-1")

		assert.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix)
	})
}

func TestBookingService_GetTodayArrivals(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{bookingIn(model.StatusConfirmed, today())}, nil)

	res, err := f.svc.GetTodayArrivals(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
