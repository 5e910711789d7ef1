package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategory string
type VehicleType string

const (
	VehicleCategorySedan       VehicleCategory = "sedan"
	VehicleCategorySUV         VehicleCategory = "suv"
	VehicleCategoryLuxury      VehicleCategory = "luxury"
	VehicleCategoryCompact     VehicleCategory = "compact"
	VehicleCategoryPickup      VehicleCategory = "pickup"
	VehicleCategoryMinivan     VehicleCategory = "minivan"
	VehicleCategoryConvertible VehicleCategory = "convertible"
	VehicleCategoryElectric    VehicleCategory = "electric"

	VehicleTypeCar  VehicleType = "car"
	VehicleTypeBike VehicleType = "bike"
)

type Vehicle struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Make        string             `json:"make" bson:"make" validate:"required"`
	Model       string             `json:"model" bson:"model" validate:"required"`
	Year        int                `json:"year" bson:"year" validate:"required"`
	Category    VehicleCategory    `json:"category" bson:"category" validate:"required"`
	Type        VehicleType        `json:"type" bson:"type" default:"car"`
	DailyRate   float64            `json:"daily_rate" bson:"daily_rate" validate:"required,gt=0"`
	Location    string             `json:"location" bson:"location"`
	Available   bool               `json:"available" bson:"available" default:"true"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// VehicleFilter holds catalog browse predicates. A nil/zero field places no
// constraint; provided fields combine with logical AND.
type VehicleFilter struct {
	Search    string           `json:"search" form:"search"`
	Location  string           `json:"location" form:"location"`
	Category  *VehicleCategory `json:"category" form:"category"`
	Type      *VehicleType     `json:"type" form:"type"`
	PriceMin  *float64         `json:"price_min" form:"price_min"`
	PriceMax  *float64         `json:"price_max" form:"price_max"`
	Available *bool            `json:"available" form:"available"`

	// ExcludeOwnerID drops the viewer's own vehicles from browse results.
	ExcludeOwnerID primitive.ObjectID `json:"-" form:"-"`
}

// DefaultVehicleFilter constrains the browse listing to available vehicles.
func DefaultVehicleFilter() *VehicleFilter {
	available := true
	return &VehicleFilter{Available: &available}
}

// Matches reports whether the vehicle satisfies every provided predicate.
// Text predicates are case-insensitive substring matches over make/model
// (Search) and location; price bounds are inclusive.
func (f *VehicleFilter) Matches(v *Vehicle) bool {
	if f == nil {
		return true
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.Make), q) && !strings.Contains(strings.ToLower(v.Model), q) {
			return false
		}
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(v.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Category != nil && v.Category != *f.Category {
		return false
	}
	if f.Type != nil && v.Type != *f.Type {
		return false
	}
	if f.PriceMin != nil && v.DailyRate < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && v.DailyRate > *f.PriceMax {
		return false
	}
	if f.Available != nil && v.Available != *f.Available {
		return false
	}
	if !f.ExcludeOwnerID.IsZero() && v.OwnerID == f.ExcludeOwnerID {
		return false
	}
	return true
}

// ValidCategories lists the accepted vehicle categories.
var ValidCategories = []VehicleCategory{
	VehicleCategorySedan,
	VehicleCategorySUV,
	VehicleCategoryLuxury,
	VehicleCategoryCompact,
	VehicleCategoryPickup,
	VehicleCategoryMinivan,
	VehicleCategoryConvertible,
	VehicleCategoryElectric,
}

func IsValidCategory(c VehicleCategory) bool {
	for _, valid := range ValidCategories {
		if c == valid {
			return true
		}
	}
	return false
}
