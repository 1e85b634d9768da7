package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/bill"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/feedback"
	"frontdesk/internal/handlers/gallery"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/offer"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/roomimage"
	"frontdesk/internal/handlers/roomtype"
	"frontdesk/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Guest     guest.Handler
	RoomType  roomtype.Handler
	Room      room.Handler
	Booking   booking.Handler
	Bill      bill.Handler
	Feedback  feedback.Handler
	Gallery   gallery.Handler
	Offer     offer.Handler
	RoomImage roomimage.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Bill.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Offer.Router(routerGroup)
		r.DomainHandlers.RoomImage.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
