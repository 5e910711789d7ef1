package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up catalog and listing-management routes
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string) {
	// Public catalog; a valid token tailors results (own listings hidden)
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.AuthOptional(jwtSecret))
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	protected := r.Group("/vehicles")
	protected.Use(middleware.AuthRequired(jwtSecret))
	{
		protected.GET("/mine", vehicleHandler.GetMyVehicles)
		protected.POST("", vehicleHandler.CreateVehicle)
		protected.PUT("/:id", vehicleHandler.UpdateVehicle)
		protected.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
