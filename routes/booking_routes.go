package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up booking lifecycle routes
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, jwtSecret string) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthRequired(jwtSecret))
	{
		bookings.POST("/quote", bookingHandler.Quote)
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.GetMyBookings)
		bookings.GET("/owner", bookingHandler.GetOwnerBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.POST("/:id/payment", bookingHandler.Pay)
		bookings.POST("/:id/cancel", bookingHandler.Cancel)
		bookings.POST("/:id/decision", bookingHandler.Decide)
	}
}
