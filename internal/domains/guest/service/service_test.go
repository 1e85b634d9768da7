package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func setup(t *testing.T) (service.Guest, *guestMocks.MockGuest, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockBookingRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockBookingRepo, mockCache
}

func TestGuestService_Create(t *testing.T) {
	svc, mockRepo, _, mockCache := setup(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	req := dto.CreateGuestRequest{Name: "Ana Lima", Phone: "+5511999990000", Email: "ana@example.com"}

	tests := []struct {
		name      string
		setupMock func()
		wantKind  string
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate phone",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "duplicate phone raced past the check",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantKind: failure.KindConflict,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, req)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			writes.Wait(t, model.CachePrefix+"gets", model.CachePrefix+"count")
			assert.Equal(t, "+5511999990000", res.Phone)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := setup(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Guest{{ID: "guest-1", Name: "Ana Lima"}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, dto.SearchFilter("ana"))

	require.NoError(t, err)
	writes.Wait(t, model.CachePrefix+"count", model.CachePrefix+"gets")
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Guests, 1)
}

func TestGuestService_Update(t *testing.T) {
	svc, mockRepo, _, mockCache := setup(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	t.Run("missing guest", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Name: "Ana"}, "guest-1")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("updated", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Ana", fields[model.FieldName])
				assert.NotContains(t, fields, model.FieldPhone)

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Name: "Ana"}, "guest-1")

		assert.NoError(t, err)
		writes.Wait(t, model.CachePrefix+"get:guest-1", model.CachePrefix+"gets", bookingModel.CachePrefix)
	})
}

func TestGuestService_GetBookings(t *testing.T) {
	svc, mockRepo, mockBookingRepo, _ := setup(t)

	t.Run("missing guest", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.GetBookings(context.Background(), "guest-1")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("bookings of the guest", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockBookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{ID: "booking-2", GuestID: "guest-1", Status: bookingModel.StatusConfirmed},
				{ID: "booking-1", GuestID: "guest-1", Status: bookingModel.StatusCheckedOut},
			}, nil)

		res, err := svc.GetBookings(context.Background(), "guest-1")

		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "booking-2", res[0].ID)
	})
}
