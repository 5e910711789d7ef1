package services

import (
	"context"
	"fmt"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService interface {
	ListVehicles(ctx context.Context, filter *models.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetOwnerVehicles(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	CreateVehicle(ctx context.Context, ownerID primitive.ObjectID, vehicle *models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id, ownerID primitive.ObjectID, updates map[string]interface{}) error
	DeleteVehicle(ctx context.Context, id, ownerID primitive.ObjectID) error
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	bookingRepo interfaces.BookingRepository
	paymentRepo interfaces.PaymentRepository
	logger      *logger.Logger
}

func NewVehicleService(
	vehicleRepo interfaces.VehicleRepository,
	bookingRepo interfaces.BookingRepository,
	paymentRepo interfaces.PaymentRepository,
	log *logger.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		logger:      log,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *models.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	if filter == nil {
		filter = models.DefaultVehicleFilter()
	}
	return s.vehicleRepo.List(ctx, filter, params)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) GetOwnerVehicles(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	return s.vehicleRepo.GetByOwnerID(ctx, ownerID)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, ownerID primitive.ObjectID, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if vehicle.DailyRate <= 0 {
		return nil, fmt.Errorf("daily rate must be positive")
	}
	if !models.IsValidCategory(vehicle.Category) {
		return nil, fmt.Errorf("unknown vehicle category %q", vehicle.Category)
	}

	vehicle.OwnerID = ownerID
	if vehicle.Type == "" {
		vehicle.Type = models.VehicleTypeCar
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(vehicle.ID).WithUserID(ownerID).Info("Vehicle listed")

	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id, ownerID primitive.ObjectID, updates map[string]interface{}) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != ownerID {
		return ErrNotVehicleOwner
	}

	if rate, ok := updates["daily_rate"]; ok {
		if rateVal, ok := rate.(float64); !ok || rateVal <= 0 {
			return fmt.Errorf("daily rate must be positive")
		}
	}

	return s.vehicleRepo.Update(ctx, id, updates)
}

// DeleteVehicle removes a vehicle and its dependents in referential order:
// payments for the vehicle's bookings, then the bookings, then the vehicle.
// A failure at any step aborts the remainder, so the vehicle is only removed
// once nothing references it.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id, ownerID primitive.ObjectID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != ownerID {
		return ErrNotVehicleOwner
	}

	bookings, err := s.bookingRepo.GetByVehicleID(ctx, id)
	if err != nil {
		return err
	}

	bookingIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
	}

	if err := s.paymentRepo.DeleteByBookingIDs(ctx, bookingIDs); err != nil {
		return fmt.Errorf("failed to delete payments before vehicle: %w", err)
	}
	if err := s.bookingRepo.DeleteByVehicleID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete bookings before vehicle: %w", err)
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithVehicleID(id).WithUserID(ownerID).
		WithField("bookings_removed", len(bookingIDs)).
		Info("Vehicle deleted with dependents")

	return nil
}
