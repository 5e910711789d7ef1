package validators

import (
	"fmt"
	"time"

	"gorent/internal/models"
)

type VehicleCreateRequest struct {
	Make        string  `json:"make" validate:"required,min=2,max=50"`
	Model       string  `json:"model" validate:"required,min=1,max=50"`
	Year        int     `json:"year" validate:"required,min=1990"`
	Category    string  `json:"category" validate:"required,vehicle_category"`
	Type        string  `json:"type" validate:"omitempty,vehicle_type"`
	DailyRate   float64 `json:"daily_rate" validate:"required,daily_rate"`
	Location    string  `json:"location" validate:"required,min=2,max=100"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Available   *bool   `json:"available"`
}

type VehicleUpdateRequest struct {
	Make        *string  `json:"make" validate:"omitempty,min=2,max=50"`
	Model       *string  `json:"model" validate:"omitempty,min=1,max=50"`
	Year        *int     `json:"year" validate:"omitempty,min=1990"`
	Category    *string  `json:"category" validate:"omitempty,vehicle_category"`
	Type        *string  `json:"type" validate:"omitempty,vehicle_type"`
	DailyRate   *float64 `json:"daily_rate" validate:"omitempty,daily_rate"`
	Location    *string  `json:"location" validate:"omitempty,min=2,max=100"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Available   *bool    `json:"available"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	currentYear := time.Now().Year()
	if req.Year > currentYear+1 {
		errors = append(errors, ValidationError{
			Field:   "year",
			Tag:     "max",
			Value:   fmt.Sprintf("%d", req.Year),
			Message: fmt.Sprintf("Year cannot be later than %d", currentYear+1),
		})
	}

	return errors
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.Year != nil {
		currentYear := time.Now().Year()
		if *req.Year > currentYear+1 {
			errors = append(errors, ValidationError{
				Field:   "year",
				Tag:     "max",
				Value:   fmt.Sprintf("%d", *req.Year),
				Message: fmt.Sprintf("Year cannot be later than %d", currentYear+1),
			})
		}
	}

	return errors
}

// ToModel maps a validated create request onto a vehicle document.
func (req *VehicleCreateRequest) ToModel() *models.Vehicle {
	vehicle := &models.Vehicle{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Category:    models.VehicleCategory(req.Category),
		Type:        models.VehicleType(req.Type),
		DailyRate:   req.DailyRate,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Available:   true,
	}
	if req.Available != nil {
		vehicle.Available = *req.Available
	}
	return vehicle
}

// ToUpdates maps a validated update request into the partial-update form the
// repository expects. Untouched fields stay out of the map.
func (req *VehicleUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Make != nil {
		updates["make"] = *req.Make
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.DailyRate != nil {
		updates["daily_rate"] = *req.DailyRate
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	return updates
}
