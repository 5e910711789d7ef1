package interfaces

import (
	"context"

	"gorent/internal/models"
	"gorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// List applies the catalog filter server-side and paginates in source order.
	List(ctx context.Context, filter *models.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
}
