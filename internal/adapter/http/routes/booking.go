package routes

import (
	"catering_ledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
)

func addBookingRoutes(rg *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:ref_id", h.GetBooking)
		// Admin write-back.
		bookings.PATCH("/:ref_id/status", h.TransitionBooking)
		bookings.POST("/:ref_id/payments/:stage", h.RecordPayment)
		bookings.PATCH("/:ref_id/operational-cost", h.SetOperationalCost)
	}
}
