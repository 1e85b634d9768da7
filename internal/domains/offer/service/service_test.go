package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	offerMocks "frontdesk/internal/domains/offer/mocks"
	"frontdesk/internal/domains/offer/model"
	"frontdesk/internal/domains/offer/model/dto"
	"frontdesk/internal/domains/offer/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type fixture struct {
	svc    service.Offer
	repo   *offerMocks.MockOffer
	cache  *cacheMocks.MockRedisCache
	writes *cacheMocks.Writes
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:   offerMocks.NewMockOffer(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		writes: cacheMocks.NewWrites(),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())
	f.writes.Record(f.cache)

	return f
}

func TestOfferService_Create(t *testing.T) {
	inactive := false

	tests := []struct {
		name      string
		req       dto.CreateOfferRequest
		setupMock func(f fixture)
		wantKind  string
		wantOffer func(t *testing.T, res dto.OfferResponse)
	}{
		{
			name: "percentage offer is active by default",
			req: dto.CreateOfferRequest{
				Title:        "Early bird",
				Discount:     15,
				DiscountType: "percentage",
				ValidFrom:    "2026-01-01",
				ValidTo:      "2026-03-31",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, offer model.Offer) error {
						assert.Equal(t, model.DiscountPercentage, offer.DiscountType)
						assert.True(t, offer.IsActive)
						assert.Equal(t, "admin-1", offer.CreatedBy)

						return nil
					})
			},
			wantOffer: func(t *testing.T, res dto.OfferResponse) {
				assert.Equal(t, "2026-01-01", res.ValidFrom)
				assert.Equal(t, "2026-03-31", res.ValidTo)
				assert.Zero(t, res.UsageCount)
			},
		},
		{
			name: "single day fixed offer kept inactive",
			req: dto.CreateOfferRequest{
				Title:        "Anniversary",
				Discount:     250.456,
				DiscountType: "fixed",
				ValidFrom:    "2026-05-10",
				ValidTo:      "2026-05-10",
				IsActive:     &inactive,
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOffer: func(t *testing.T, res dto.OfferResponse) {
				assert.False(t, res.IsActive)
				assert.InDelta(t, 250.46, res.Discount, 0.0001)
			},
		},
		{
			name: "percentage above one hundred",
			req: dto.CreateOfferRequest{
				Title:        "Too good",
				Discount:     120,
				DiscountType: "percentage",
				ValidFrom:    "2026-01-01",
				ValidTo:      "2026-01-31",
			},
			setupMock: func(fixture) {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "fixed discount above one hundred is fine",
			req: dto.CreateOfferRequest{
				Title:        "Suite credit",
				Discount:     500,
				DiscountType: "fixed",
				ValidFrom:    "2026-01-01",
				ValidTo:      "2026-01-31",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOffer: func(t *testing.T, res dto.OfferResponse) {
				assert.Equal(t, "fixed", res.DiscountType)
			},
		},
		{
			name: "window ends before it starts",
			req: dto.CreateOfferRequest{
				Title:        "Backwards",
				Discount:     10,
				DiscountType: "fixed",
				ValidFrom:    "2026-02-01",
				ValidTo:      "2026-01-31",
			},
			setupMock: func(fixture) {},
			wantKind:  failure.KindInvalidInput,
		},
		{
			name: "insert error",
			req: dto.CreateOfferRequest{
				Title:        "Weekend",
				Discount:     10,
				DiscountType: "percentage",
				ValidFrom:    "2026-01-01",
				ValidTo:      "2026-01-31",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := f.svc.Create(ctx, tt.req)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			f.writes.Wait(t, model.CachePrefix+"active", model.CachePrefix+"count")
			assert.NotEmpty(t, res.ID)
			tt.wantOffer(t, res)
		})
	}
}

func TestOfferService_GetActive(t *testing.T) {
	t.Run("filters on today and caches the page", func(t *testing.T) {
		f := newFixture(t)
		today := gModel.DateOf(timezone.Today())

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Offer, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, true, args[model.FieldIsActive])
				assert.Equal(t, today, args["active_from"])
				assert.Equal(t, today, args["active_to"])

				return []model.Offer{{ID: "offer-1", Title: "Early bird", IsActive: true}}, nil
			})

		res, err := f.svc.GetActive(context.Background(), gDto.QueryParams{Page: 1, Limit: 2})

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix+"count", model.CachePrefix+"active")
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Offers, 1)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetActive(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := f.svc.GetActive(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.Equal(t, failure.KindInternal, failure.GetKind(err))
	})
}

func TestOfferService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Offer{}, nil)

		_, err := f.svc.Get(context.Background(), "offer-1")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Offer{
			ID: "offer-1", Title: "Early bird", Discount: 15, DiscountType: model.DiscountPercentage, UsageCount: 4,
		}, nil)

		res, err := f.svc.Get(context.Background(), "offer-1")

		require.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix+"get:offer-1")
		assert.Equal(t, "percentage", res.DiscountType)
		assert.Equal(t, 4, res.UsageCount)
	})
}

func TestOfferService_Delete(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "offer-1")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), "offer-1")

		assert.NoError(t, err)
		f.writes.Wait(t, model.CachePrefix+"get:offer-1", model.CachePrefix+"active", model.CachePrefix+"count")
	})
}
