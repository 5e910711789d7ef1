package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVehicleFilterMatches(t *testing.T) {
	ownerA := primitive.NewObjectID()
	ownerB := primitive.NewObjectID()

	civic := &Vehicle{
		OwnerID:   ownerA,
		Make:      "Honda",
		Model:     "Civic",
		Category:  VehicleCategoryCompact,
		Type:      VehicleTypeCar,
		DailyRate: 45,
		Location:  "Mumbai",
		Available: true,
	}
	rav4 := &Vehicle{
		OwnerID:   ownerB,
		Make:      "Toyota",
		Model:     "RAV4",
		Category:  VehicleCategorySUV,
		Type:      VehicleTypeCar,
		DailyRate: 80,
		Location:  "Pune",
		Available: false,
	}

	category := VehicleCategorySUV
	vehicleType := VehicleTypeBike
	priceMin := 50.0
	priceMax := 60.0
	available := true

	tests := []struct {
		name    string
		filter  *VehicleFilter
		vehicle *Vehicle
		want    bool
	}{
		{"nil filter matches everything", nil, rav4, true},
		{"empty filter matches everything", &VehicleFilter{}, civic, true},
		{"search hits make case-insensitively", &VehicleFilter{Search: "honda"}, civic, true},
		{"search hits model substring", &VehicleFilter{Search: "rav"}, rav4, true},
		{"search misses", &VehicleFilter{Search: "tesla"}, civic, false},
		{"location substring", &VehicleFilter{Location: "mum"}, civic, true},
		{"location misses", &VehicleFilter{Location: "delhi"}, civic, false},
		{"category match", &VehicleFilter{Category: &category}, rav4, true},
		{"category mismatch", &VehicleFilter{Category: &category}, civic, false},
		{"type mismatch", &VehicleFilter{Type: &vehicleType}, civic, false},
		{"price min inclusive", &VehicleFilter{PriceMin: &priceMin}, rav4, true},
		{"price min excludes cheaper", &VehicleFilter{PriceMin: &priceMin}, civic, false},
		{"price max excludes pricier", &VehicleFilter{PriceMax: &priceMax}, rav4, false},
		{"availability filter", &VehicleFilter{Available: &available}, rav4, false},
		{"own listing excluded", &VehicleFilter{ExcludeOwnerID: ownerA}, civic, false},
		{"other owner's listing kept", &VehicleFilter{ExcludeOwnerID: ownerA}, rav4, true},
		{
			"predicates combine with AND",
			&VehicleFilter{Search: "honda", Location: "pune"},
			civic,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.vehicle))
		})
	}
}

func TestVehicleFilterAvailableWithPriceCap(t *testing.T) {
	honda := &Vehicle{Make: "Honda", DailyRate: 40, Available: true}
	toyota := &Vehicle{Make: "Toyota", DailyRate: 80, Available: false}

	available := true
	priceMax := 50.0
	filter := &VehicleFilter{Available: &available, PriceMax: &priceMax}

	assert.True(t, filter.Matches(honda))
	assert.False(t, filter.Matches(toyota))
}

func TestVehicleFilterPriceBoundsInclusive(t *testing.T) {
	rate := 45.0
	v := &Vehicle{DailyRate: rate}

	assert.True(t, (&VehicleFilter{PriceMin: &rate}).Matches(v))
	assert.True(t, (&VehicleFilter{PriceMax: &rate}).Matches(v))
}

func TestDefaultVehicleFilter(t *testing.T) {
	filter := DefaultVehicleFilter()

	assert.NotNil(t, filter.Available)
	assert.True(t, *filter.Available)
	assert.False(t, filter.Matches(&Vehicle{Available: false}))
	assert.True(t, filter.Matches(&Vehicle{Available: true}))
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range ValidCategories {
		assert.True(t, IsValidCategory(category))
	}
	assert.False(t, IsValidCategory("spaceship"))
}
