package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorent/internal/models"
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// ListVehicles returns the browseable catalog, filtered and paginated.
// All filter predicates are optional query parameters.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	filter := buildVehicleFilter(c)
	params := utils.GetPaginationParams(c)

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), filter, params)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "VEHICLE_LIST_FAILED", utils.ErrInternalServer)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", map[string]interface{}{
		"vehicles": vehicles,
	}, meta)
}

// GetVehicle returns a single vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		respondRepositoryError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// GetMyVehicles returns the caller's own listings
func (h *VehicleHandler) GetMyVehicles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.GetOwnerVehicles(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "VEHICLE_LIST_FAILED", utils.ErrInternalServer)
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved successfully", map[string]interface{}{
		"vehicles": vehicles,
	})
}

// CreateVehicle lists a new vehicle owned by the caller
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleCreate(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), userID, request.ToModel())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "VEHICLE_CREATE_FAILED", "Failed to create vehicle: "+err.Error())
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

// UpdateVehicle applies a partial update to a vehicle the caller owns
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	var request validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleUpdate(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	err = h.vehicleService.UpdateVehicle(c.Request.Context(), vehicleID, userID, request.ToUpdates())
	if err != nil {
		if errors.Is(err, services.ErrNotVehicleOwner) {
			utils.ForbiddenResponse(c)
			return
		}
		respondRepositoryError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", nil)
}

// DeleteVehicle removes a vehicle the caller owns along with its booking
// history and payment records
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	err = h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotVehicleOwner) {
			utils.ForbiddenResponse(c)
			return
		}
		respondRepositoryError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}

func buildVehicleFilter(c *gin.Context) *models.VehicleFilter {
	filter := models.DefaultVehicleFilter()
	filter.Search = c.Query("search")
	filter.Location = c.Query("location")

	if value := c.Query("category"); value != "" {
		category := models.VehicleCategory(value)
		filter.Category = &category
	}
	if value := c.Query("type"); value != "" {
		vehicleType := models.VehicleType(value)
		filter.Type = &vehicleType
	}
	if value := c.Query("price_min"); value != "" {
		if priceMin, err := strconv.ParseFloat(value, 64); err == nil {
			filter.PriceMin = &priceMin
		}
	}
	if value := c.Query("price_max"); value != "" {
		if priceMax, err := strconv.ParseFloat(value, 64); err == nil {
			filter.PriceMax = &priceMax
		}
	}
	if value := c.Query("available"); value != "" {
		if available, err := strconv.ParseBool(value); err == nil {
			filter.Available = &available
		}
	}

	// Logged-in browsers don't see their own listings.
	if userID, exists := c.Get("user_id"); exists {
		if oid, ok := userID.(primitive.ObjectID); ok {
			filter.ExcludeOwnerID = oid
		}
	}

	return filter
}
