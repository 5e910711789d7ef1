package interfaces

import (
	"context"

	"gorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error)

	DeleteByBookingIDs(ctx context.Context, bookingIDs []primitive.ObjectID) error
}
