package service

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/dashboard/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	GetStats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	otel        otel.Otel
}

func New(bookingRepo bookingRepo.Booking, roomRepo roomRepo.Room, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

// GetStats is never cached. The counts run concurrently against the read pool.
func (s *serviceImpl) GetStats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group, gctx := errgroup.WithContext(ctx)

	count := func(target *int, filter gDto.FilterGroup) func() error {
		return func() error {
			total, err := s.bookingRepo.Count(gctx, filter)
			if err != nil {
				return fmt.Errorf("failed to count bookings: %w", err)
			}

			*target = total

			return nil
		}
	}

	group.Go(count(&res.TotalBookings, gDto.FilterGroup{}))
	group.Go(count(&res.CheckedIn, shared.FilterByField(bookingModel.FieldStatus, bookingModel.StatusCheckedIn, bookingModel.TableName)))
	group.Go(count(&res.TodayArrivals, bookingDto.TodayFilter(bookingModel.FieldCheckInDate, bookingModel.StatusConfirmed)))
	group.Go(count(&res.TodayDepartures, bookingDto.TodayFilter(bookingModel.FieldCheckOutDate, bookingModel.StatusCheckedIn)))
	group.Go(func() error {
		counts, err := s.roomRepo.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("failed to count rooms: %w", err)
		}

		res.Rooms.FromCounts(counts)

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build dashboard stats")

		return dto.StatsResponse{}, err
	}

	res.PendingCheckout = res.CheckedIn

	return res, nil
}
