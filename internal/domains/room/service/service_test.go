package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	roomTypeMocks "frontdesk/internal/domains/roomtype/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const roomTypeID = "7b0c3a4e-0f55-4d3b-9a61-3f4a1c2d5e6f"

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockRoomTypeRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, mockRoomTypeRepo, mockCache := newService(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	req := dto.CreateRoomRequest{RoomNumber: "101", Floor: 1, RoomTypeID: roomTypeID}

	tests := []struct {
		name       string
		setupMock  func()
		wantWrites []string
		wantKind   string
		wantErr    bool
	}{
		{
			name: "successful creation starts available",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, model.StatusAvailable, room.Status)
						assert.Equal(t, "test-user-id", room.CreatedBy)

						return nil
					})
			},
			wantWrites: []string{model.CachePrefix},
		},
		{
			name: "unknown room type",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "duplicate room number",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "unique violation on insert",
			setupMock: func() {
				mockRoomTypeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, req)

			writes.Wait(t, tt.wantWrites...)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "101", res.RoomNumber)
			assert.Equal(t, string(model.StatusAvailable), res.Status)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	tests := []struct {
		name       string
		setupMock  func()
		wantWrites []string
		wantErr    bool
	}{
		{
			name: "cache miss then found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-1", RoomNumber: "101", Status: model.StatusAvailable, RoomTypeName: "Deluxe"}, nil)
			},
			wantWrites: []string{model.CachePrefix},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "room-1")

			writes.Wait(t, tt.wantWrites...)

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindNotFound))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Deluxe", res.RoomTypeName)
		})
	}
}

func TestRoomService_GetByStatus(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetByStatus(context.Background(), "haunted")

		assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
	})

	t.Run("lists matching rooms", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{{ID: "room-1", Status: model.StatusDirty}}, nil)

		res, err := svc.GetByStatus(context.Background(), "dirty")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	tests := []struct {
		name       string
		status     string
		setupMock  func()
		wantWrites []string
		wantKind   string
	}{
		{
			name:   "available to maintenance",
			status: "maintenance",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Status: model.StatusAvailable}, nil)
				mockRepo.EXPECT().
					TransitionStatus(gomock.Any(), "room-1", model.StatusAvailable, model.StatusMaintenance, gomock.Any()).
					Return(true, nil)
			},
			wantWrites: []string{model.CachePrefix},
		},
		{
			name:   "reserved cannot be set manually",
			status: "reserved",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Status: model.StatusAvailable}, nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name:   "occupied room cannot leave manually",
			status: "available",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Status: model.StatusOccupied}, nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name:   "lost race",
			status: "dirty",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Status: model.StatusAvailable}, nil)
				mockRepo.EXPECT().
					TransitionStatus(gomock.Any(), "room-1", model.StatusAvailable, model.StatusDirty, gomock.Any()).
					Return(false, nil)
			},
			wantKind: failure.KindInvalidState,
		},
		{
			name:   "missing room",
			status: "dirty",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name:      "unknown status",
			status:    "haunted",
			setupMock: func() {},
			wantKind:  failure.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: tt.status}, "room-1")

			writes.Wait(t, tt.wantWrites...)

			if tt.wantKind == "" {
				assert.NoError(t, err)

				return
			}

			assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)
	writes := cacheMocks.NewWrites()
	writes.Record(mockCache)

	t.Run("referenced by bookings", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

		err := svc.Delete(context.Background(), "room-1")

		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("deleted", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "room-1")

		writes.Wait(t, model.CachePrefix)

		assert.NoError(t, err)
	})
}
