package interfaces

import (
	"context"
	"time"

	"gorent/internal/models"
	"gorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	GetByUserID(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Booking, error)
	GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// CountOverlapping counts pending/confirmed bookings of the vehicle whose
	// [start, end] range intersects the given one. Used by the reject overlap
	// policy only.
	CountOverlapping(ctx context.Context, vehicleID primitive.ObjectID, start, end time.Time) (int64, error)

	DeleteByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) error
}
