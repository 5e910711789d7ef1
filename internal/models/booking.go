package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type OwnerDecision string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	OwnerDecisionPending  OwnerDecision = "pending"
	OwnerDecisionAccepted OwnerDecision = "accepted"
	OwnerDecisionRejected OwnerDecision = "rejected"
)

// CancellationCutoff is the window before the rental start after which the
// renter may no longer cancel. Protects owners from last-minute cancellations.
const CancellationCutoff = 24 * time.Hour

type Booking struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	VehicleID      primitive.ObjectID  `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	UserID         primitive.ObjectID  `json:"user_id" bson:"user_id" validate:"required"`
	StartDate      time.Time           `json:"start_date" bson:"start_date" validate:"required"`
	EndDate        time.Time           `json:"end_date" bson:"end_date" validate:"required"`
	Days           int                 `json:"days" bson:"days"`
	TotalPrice     float64             `json:"total_price" bson:"total_price"`
	Status         BookingStatus       `json:"status" bson:"status" default:"pending"`
	OwnerDecision  OwnerDecision       `json:"owner_decision" bson:"owner_decision" default:"pending"`
	PickupAddress  string              `json:"pickup_address" bson:"pickup_address"`
	DropoffAddress string              `json:"dropoff_address" bson:"dropoff_address"`
	PaymentID      *primitive.ObjectID `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty" bson:"cancelled_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// IsTerminal reports whether no further renter-visible transition originates
// from the status. "completed" is only ever set administratively.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CancellationState is the renter-facing view of the cancellation window,
// derived from the booking start, status, and the current clock.
type CancellationState struct {
	IsCancellable   bool   `json:"is_cancellable"`
	HoursUntilStart int    `json:"hours_until_start"`
	CountdownText   string `json:"countdown_text"`
}

// CancellationStateAt derives cancellation eligibility for a booking at the
// given instant. A booking is cancellable while it is pending or confirmed and
// more than CancellationCutoff remains before its start. HoursUntilStart is a
// whole-hour difference and goes negative once the rental has started. The
// countdown text renders the time left until the cutoff as "{h}h {m}m {s}s left".
//
// A zero start date fails safe: not cancellable, empty countdown. Callers that
// hit that case should log it rather than surface an error.
func CancellationStateAt(start time.Time, status BookingStatus, now time.Time) CancellationState {
	if start.IsZero() {
		return CancellationState{}
	}

	until := start.Sub(now)
	state := CancellationState{
		HoursUntilStart: int(until.Hours()),
	}

	if status != BookingStatusPending && status != BookingStatusConfirmed {
		return state
	}
	if until <= CancellationCutoff {
		return state
	}

	state.IsCancellable = true
	state.CountdownText = formatCountdown(until - CancellationCutoff)
	return state
}

// CancellationState derives the booking's cancellation view against now.
func (b *Booking) CancellationState(now time.Time) CancellationState {
	return CancellationStateAt(b.StartDate, b.Status, now)
}

func formatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	seconds := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%dh %dm %ds left", hours, minutes, seconds)
}

// CanTransitionTo reports whether the renter-visible state machine permits the
// transition. Cancellation additionally requires the cutoff check, which
// depends on the clock and lives in CancellationStateAt.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingStatusConfirmed:
		return b.Status == BookingStatusPending
	case BookingStatusCancelled:
		return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
	default:
		return false
	}
}
