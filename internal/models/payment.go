package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCash       PaymentMethod = "cash"
)

// Payment records the mock charge taken when a booking is confirmed. It is
// written once, alongside the booking's transition to confirmed, and never
// mutated afterward.
type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingID     primitive.ObjectID `json:"booking_id" bson:"booking_id" validate:"required"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	Amount        float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency      string             `json:"currency" bson:"currency" default:"USD"`
	Status        PaymentStatus      `json:"status" bson:"status" default:"pending"`
	PaymentMethod PaymentMethod      `json:"payment_method" bson:"payment_method" validate:"required"`
	TransactionID string             `json:"transaction_id" bson:"transaction_id"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidPaymentMethods lists the methods accepted at checkout.
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodUPI,
	PaymentMethodCash,
}

func IsValidPaymentMethod(m PaymentMethod) bool {
	for _, valid := range ValidPaymentMethods {
		if m == valid {
			return true
		}
	}
	return false
}
