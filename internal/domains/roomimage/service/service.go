package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomImage=MockRoomImageService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/internal/domains/roomimage/model"
	"frontdesk/internal/domains/roomimage/model/dto"
	"frontdesk/internal/domains/roomimage/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"path"

	"github.com/rs/zerolog/log"
)

const cacheGetRoomImages = model.CachePrefix + "room"

type RoomImage interface {
	Upload(ctx context.Context, roomID string, req dto.UploadImageRequest) (dto.ImageResponse, error)
	GetByRoom(ctx context.Context, roomID string) (dto.GetRoomImagesResponse, error)
	Delete(ctx context.Context, roomID, imageID string) error
}

type serviceImpl struct {
	repo     repository.RoomImage
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.RoomImage, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) RoomImage {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomImages, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room image cache")
		}
	}()
}

// Upload stores the file under the room's folder, then the row. A failed insert removes the object again.
func (s *serviceImpl) Upload(ctx context.Context, roomID string, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room")

		return res, fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found")
	}

	object, err := s.s3.UploadFile(ctx, path.Join(model.Directory, roomID), req.ImageFile, req.Image, req.ObjectName())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload room image: %w", err)
	}

	image := req.ToModel(roomID, object.Key, object.URL, user)

	if err = s.repo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Str("object", object.Key).Msg("failed to save room image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), object.Key); delErr != nil {
			log.Error().Err(delErr).Str("object", object.Key).Msg("failed to remove orphaned room object")
		}

		return res, fmt.Errorf("failed to save room image: %w", err)
	}

	res.FromModel(image)
	s.invalidate(ctx, roomID)

	return res, nil
}

// GetByRoom lists a room's images oldest first. An unknown room has no images.
func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string) (res dto.GetRoomImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoomImages, roomID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room images")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	images, err := s.repo.GetAll(ctx, params, dto.RoomFilter(roomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room images")

		return res, fmt.Errorf("failed to get room images: %w", err)
	}

	res.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room images to cache")
		}
	}()

	return res, nil
}

// Delete removes the row, then the object. Storage errors are only logged.
func (s *serviceImpl) Delete(ctx context.Context, roomID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := dto.ImageFilter(roomID, imageID)

	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room image")

		return fmt.Errorf("failed to get room image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("room image not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room image")

		return fmt.Errorf("failed to delete room image: %w", err)
	}

	if image.ObjectKey != constant.Empty {
		if err := s.s3.DeleteFile(ctx, image.ObjectKey); err != nil {
			log.Warn().Err(err).Str("object", image.ObjectKey).Msg("room object left in storage")
		}
	}

	s.invalidate(ctx, roomID)

	return nil
}
