package validators

import (
	"time"

	"gorent/internal/utils"
)

type BookingCreateRequest struct {
	VehicleID      string `json:"vehicle_id" validate:"required,object_id"`
	StartDate      string `json:"start_date" validate:"required,booking_date"`
	EndDate        string `json:"end_date" validate:"required,booking_date"`
	PickupAddress  string `json:"pickup_address" validate:"omitempty,max=200"`
	DropoffAddress string `json:"dropoff_address" validate:"omitempty,max=200"`
}

type BookingQuoteRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required,object_id"`
	StartDate string `json:"start_date" validate:"required,booking_date"`
	EndDate   string `json:"end_date" validate:"required,booking_date"`
}

type BookingPaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

type BookingDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
}

func ValidateBookingCreate(req *BookingCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)
	return append(errors, validateDateOrder(req.StartDate, req.EndDate)...)
}

func ValidateBookingQuote(req *BookingQuoteRequest) ValidationErrors {
	errors := ValidateStruct(req)
	return append(errors, validateDateOrder(req.StartDate, req.EndDate)...)
}

// validateDateOrder rejects ranges where the return date precedes pickup.
// Same-day rentals are allowed.
func validateDateOrder(startDate, endDate string) ValidationErrors {
	start, errStart := time.Parse(utils.BookingDateFmt, startDate)
	end, errEnd := time.Parse(utils.BookingDateFmt, endDate)
	if errStart != nil || errEnd != nil {
		// Format errors already reported by the booking_date tag.
		return nil
	}

	if end.Before(start) {
		return ValidationErrors{{
			Field:   "end_date",
			Tag:     "date_order",
			Value:   endDate,
			Message: "End date must not be before start date",
		}}
	}

	return nil
}
