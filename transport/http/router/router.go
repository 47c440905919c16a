package router

import (
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/complaint"
	"hotel/internal/handlers/event"
	"hotel/internal/handlers/feedback"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/hotelservice"
	"hotel/internal/handlers/housekeeping"
	"hotel/internal/handlers/inventory"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/roomservice"
	"hotel/internal/handlers/staff"
	"hotel/internal/handlers/stats"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Guest        guest.Handler
	Room         room.Handler
	Booking      booking.Handler
	RoomService  roomservice.Handler
	HotelService hotelservice.Handler
	Feedback     feedback.Handler
	Complaint    complaint.Handler
	Staff        staff.Handler
	Inventory    inventory.Handler
	Housekeeping housekeeping.Handler
	Event        event.Handler
	Stats        stats.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.RoomService.Router(routerGroup)
		r.DomainHandlers.HotelService.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Complaint.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
