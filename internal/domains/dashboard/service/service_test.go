package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/dashboard/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

// bookingCounts answers Count by the status and date fields in the filter.
func bookingCounts(_ context.Context, filter gDto.FilterGroup) (int, error) {
	var status, dateField string

	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		switch f.Field {
		case bookingModel.FieldStatus:
			status = string(f.Value.(bookingModel.Status))
		case bookingModel.FieldCheckInDate, bookingModel.FieldCheckOutDate:
			dateField = f.Field
		}
	}

	switch {
	case dateField == bookingModel.FieldCheckInDate:
		return 3, nil
	case dateField == bookingModel.FieldCheckOutDate:
		return 2, nil
	case status == string(bookingModel.StatusCheckedIn):
		return 7, nil
	default:
		return 40, nil
	}
}

func TestDashboardService_GetStats(t *testing.T) {
	t.Run("aggregates bookings and rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockRoomRepo := roomMocks.NewMockRoom(ctrl)

		mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(bookingCounts).Times(4)
		mockRoomRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[roomModel.Status]int{
			roomModel.StatusAvailable:   10,
			roomModel.StatusOccupied:    7,
			roomModel.StatusReserved:    4,
			roomModel.StatusDirty:       2,
			roomModel.StatusMaintenance: 1,
		}, nil)

		svc := service.New(mockBookingRepo, mockRoomRepo, mocks.NewOtel())

		res, err := svc.GetStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 40, res.TotalBookings)
		assert.Equal(t, 7, res.CheckedIn)
		assert.Equal(t, 7, res.PendingCheckout)
		assert.Equal(t, 3, res.TodayArrivals)
		assert.Equal(t, 2, res.TodayDepartures)
		assert.Equal(t, 24, res.Rooms.Total)
		assert.Equal(t, 14, res.Rooms.Unavailable)
		assert.Equal(t, 4, res.Rooms.Reserved)
	})

	t.Run("room count fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockRoomRepo := roomMocks.NewMockRoom(ctrl)

		mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		mockRoomRepo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("database error"))

		svc := service.New(mockBookingRepo, mockRoomRepo, mocks.NewOtel())

		_, err := svc.GetStats(context.Background())

		assert.Equal(t, failure.KindInternal, failure.GetKind(err))
	})
}
