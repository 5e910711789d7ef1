package services

import (
	"context"
	"testing"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type vehicleFixture struct {
	service     VehicleService
	vehicleRepo *memVehicleRepo
	bookingRepo *memBookingRepo
	paymentRepo *memPaymentRepo
	calls       []string
	owner       primitive.ObjectID
}

func newVehicleFixture(t *testing.T) *vehicleFixture {
	t.Helper()

	f := &vehicleFixture{
		vehicleRepo: newMemVehicleRepo(),
		bookingRepo: newMemBookingRepo(),
		paymentRepo: newMemPaymentRepo(),
		owner:       primitive.NewObjectID(),
	}
	f.vehicleRepo.calls = &f.calls
	f.bookingRepo.calls = &f.calls
	f.paymentRepo.calls = &f.calls

	f.service = NewVehicleService(f.vehicleRepo, f.bookingRepo, f.paymentRepo, testLogger())
	return f
}

func (f *vehicleFixture) addVehicleWithHistory(t *testing.T) *models.Vehicle {
	t.Helper()

	vehicle := f.vehicleRepo.add(&models.Vehicle{
		OwnerID:   f.owner,
		Make:      "Toyota",
		Model:     "RAV4",
		Category:  models.VehicleCategorySUV,
		DailyRate: 80,
		Available: true,
	})

	booking := &models.Booking{
		VehicleID: vehicle.ID,
		UserID:    primitive.NewObjectID(),
		Status:    models.BookingStatusConfirmed,
	}
	require.NoError(t, f.bookingRepo.Create(context.Background(), booking))
	require.NoError(t, f.paymentRepo.Create(context.Background(), &models.Payment{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Amount:    160,
	}))

	return vehicle
}

func TestCreateVehicle(t *testing.T) {
	f := newVehicleFixture(t)

	vehicle, err := f.service.CreateVehicle(context.Background(), f.owner, &models.Vehicle{
		Make:      "Honda",
		Model:     "Civic",
		Category:  models.VehicleCategoryCompact,
		DailyRate: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, f.owner, vehicle.OwnerID)
	assert.Equal(t, models.VehicleTypeCar, vehicle.Type, "type defaults to car")
	assert.False(t, vehicle.ID.IsZero())
}

func TestCreateVehicleValidation(t *testing.T) {
	f := newVehicleFixture(t)

	_, err := f.service.CreateVehicle(context.Background(), f.owner, &models.Vehicle{
		Make: "Honda", Model: "Civic", Category: models.VehicleCategoryCompact, DailyRate: 0,
	})
	assert.Error(t, err, "non-positive rate rejected")

	_, err = f.service.CreateVehicle(context.Background(), f.owner, &models.Vehicle{
		Make: "Honda", Model: "Civic", Category: "hovercraft", DailyRate: 45,
	})
	assert.Error(t, err, "unknown category rejected")
}

func TestUpdateVehicleOwnership(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	err := f.service.UpdateVehicle(context.Background(), vehicle.ID, primitive.NewObjectID(),
		map[string]interface{}{"available": false})
	assert.ErrorIs(t, err, ErrNotVehicleOwner)

	err = f.service.UpdateVehicle(context.Background(), vehicle.ID, f.owner,
		map[string]interface{}{"available": false})
	require.NoError(t, err)
}

func TestUpdateVehicleRejectsNonPositiveRate(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	err := f.service.UpdateVehicle(context.Background(), vehicle.ID, f.owner,
		map[string]interface{}{"daily_rate": -5.0})
	assert.Error(t, err)
}

func TestDeleteVehicleCascade(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	err := f.service.DeleteVehicle(context.Background(), vehicle.ID, f.owner)
	require.NoError(t, err)

	// Dependents go first: payments, then bookings, then the vehicle.
	assert.Equal(t, []string{"delete_payments", "delete_bookings", "delete_vehicle"}, f.calls)
	assert.Empty(t, f.paymentRepo.payments)
	assert.Empty(t, f.bookingRepo.bookings)
	assert.Empty(t, f.vehicleRepo.vehicles)
}

func TestDeleteVehicleAbortsWhenPaymentsRemain(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	f.paymentRepo.deleteErr = errStorage
	err := f.service.DeleteVehicle(context.Background(), vehicle.ID, f.owner)
	assert.ErrorIs(t, err, errStorage)

	// Neither bookings nor the vehicle may be touched after the failure.
	assert.Equal(t, []string{"delete_payments"}, f.calls)
	assert.Len(t, f.bookingRepo.bookings, 1)
	assert.Len(t, f.vehicleRepo.vehicles, 1)
}

func TestDeleteVehicleAbortsWhenBookingsRemain(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	f.bookingRepo.deleteErr = errStorage
	err := f.service.DeleteVehicle(context.Background(), vehicle.ID, f.owner)
	assert.ErrorIs(t, err, errStorage)

	assert.Equal(t, []string{"delete_payments", "delete_bookings"}, f.calls)
	assert.Len(t, f.vehicleRepo.vehicles, 1)
}

func TestDeleteVehicleOwnership(t *testing.T) {
	f := newVehicleFixture(t)
	vehicle := f.addVehicleWithHistory(t)

	err := f.service.DeleteVehicle(context.Background(), vehicle.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotVehicleOwner)
	assert.Empty(t, f.calls)
}

func TestDeleteVehicleNotFound(t *testing.T) {
	f := newVehicleFixture(t)

	err := f.service.DeleteVehicle(context.Background(), primitive.NewObjectID(), f.owner)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestListVehiclesDefaultsToAvailable(t *testing.T) {
	f := newVehicleFixture(t)
	f.vehicleRepo.add(&models.Vehicle{Make: "Honda", Model: "Civic", Available: true})
	f.vehicleRepo.add(&models.Vehicle{Make: "Old", Model: "Clunker", Available: false})

	vehicles, total, err := f.service.ListVehicles(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Civic", vehicles[0].Model)
}
