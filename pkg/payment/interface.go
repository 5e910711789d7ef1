package payment

import (
	"context"
)

// PaymentProvider is the gateway seam the booking confirm flow charges
// through. Only the mock provider ships here; real processing is out of scope.
type PaymentProvider interface {
	ProcessPayment(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error)
}

type PaymentRequest struct {
	Amount      float64                `json:"amount"`
	Currency    string                 `json:"currency"`
	Method      string                 `json:"method"`
	Description string                 `json:"description"`
	CustomerID  string                 `json:"customer_id"`
	Metadata    map[string]interface{} `json:"metadata"`
}

type PaymentResponse struct {
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CreatedAt     int64   `json:"created_at"`
}

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)
