package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// MockProvider simulates a payment gateway. Every charge succeeds and yields
// an opaque transaction identifier; there is no settlement, capture, or refund
// behind it.
type MockProvider struct {
	// FailNext makes the next charge fail. Test hook only.
	FailNext bool
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) ProcessPayment(ctx context.Context, request *PaymentRequest) (*PaymentResponse, error) {
	if request.Amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}

	if p.FailNext {
		p.FailNext = false
		return &PaymentResponse{
			Status:    StatusFailed,
			Amount:    request.Amount,
			Currency:  request.Currency,
			CreatedAt: time.Now().Unix(),
		}, errors.New("payment declined")
	}

	return &PaymentResponse{
		TransactionID: "txn_" + uuid.NewString(),
		Status:        StatusSucceeded,
		Amount:        request.Amount,
		Currency:      request.Currency,
		CreatedAt:     time.Now().Unix(),
	}, nil
}
