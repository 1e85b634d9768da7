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
	userMocks "frontdesk/internal/domains/user/mocks"
	"frontdesk/internal/domains/user/model"
	"frontdesk/internal/domains/user/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func setup(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := setup(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	users := []model.User{
		{ID: "user-1", Username: "admin", Password: "hash", Role: model.RoleAdmin},
		{ID: "user-2", Username: "desk", Password: "hash", Role: model.RoleReception},
	}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	writes.Wait(t, model.CachePrefix+"count", model.CachePrefix+"gets")

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Users, 2)
	assert.Equal(t, "reception", res.Users[1].Role)
}

func TestUserService_Get(t *testing.T) {
	svc, mockRepo, mockCache := setup(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	tests := []struct {
		name       string
		setupMock  func()
		wantWrites []string
		wantKind   string
		wantErr    bool
	}{
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantKind: failure.KindNotFound,
			wantErr:  true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("db down"))
			},
			wantKind: failure.KindInternal,
			wantErr:  true,
		},
		{
			name: "found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", Username: "admin", Password: "hash", Role: model.RoleAdmin}, nil)
			},
			wantWrites: []string{model.CachePrefix + "get:user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "user-1")

			writes.Wait(t, tt.wantWrites...)

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", res.Username)
			assert.Nil(t, res.LastLogin)
		})
	}
}
