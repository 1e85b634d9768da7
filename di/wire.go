//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	billRepository "frontdesk/internal/domains/bill/repository"
	billService "frontdesk/internal/domains/bill/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	feedbackRepository "frontdesk/internal/domains/feedback/repository"
	feedbackService "frontdesk/internal/domains/feedback/service"
	galleryRepository "frontdesk/internal/domains/gallery/repository"
	galleryService "frontdesk/internal/domains/gallery/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	offerRepository "frontdesk/internal/domains/offer/repository"
	offerService "frontdesk/internal/domains/offer/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	roomImageRepository "frontdesk/internal/domains/roomimage/repository"
	roomImageService "frontdesk/internal/domains/roomimage/service"
	roomTypeRepository "frontdesk/internal/domains/roomtype/repository"
	roomTypeService "frontdesk/internal/domains/roomtype/service"
	userRepository "frontdesk/internal/domains/user/repository"
	userService "frontdesk/internal/domains/user/service"

	authHandler "frontdesk/internal/handlers/auth"
	billHandler "frontdesk/internal/handlers/bill"
	bookingHandler "frontdesk/internal/handlers/booking"
	dashboardHandler "frontdesk/internal/handlers/dashboard"
	feedbackHandler "frontdesk/internal/handlers/feedback"
	galleryHandler "frontdesk/internal/handlers/gallery"
	guestHandler "frontdesk/internal/handlers/guest"
	offerHandler "frontdesk/internal/handlers/offer"
	roomHandler "frontdesk/internal/handlers/room"
	roomImageHandler "frontdesk/internal/handlers/roomimage"
	roomTypeHandler "frontdesk/internal/handlers/roomtype"
	userHandler "frontdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	guestRepository.New,
	roomTypeRepository.New,
	roomRepository.New,
	bookingRepository.New,
	billRepository.New,
	billRepository.NewItem,
	feedbackRepository.New,
	galleryRepository.New,
	offerRepository.New,
	roomImageRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	userService.New,
	guestService.New,
	roomTypeService.New,
	roomService.New,
	bookingService.New,
	billService.New,
	feedbackService.New,
	galleryService.New,
	offerService.New,
	roomImageService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	guestHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	billHandler.New,
	feedbackHandler.New,
	galleryHandler.New,
	offerHandler.New,
	roomImageHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
