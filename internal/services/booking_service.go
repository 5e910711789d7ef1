package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorent/internal/config"
	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/pkg/logger"
	"gorent/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidDateRange  = errors.New("invalid booking date range")
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrNotCancellable    = errors.New("booking can no longer be cancelled")
	ErrBookingOverlap    = errors.New("vehicle is already booked for these dates")
	ErrNotBookingOwner   = errors.New("booking belongs to another user")
	ErrNotVehicleOwner   = errors.New("vehicle belongs to another owner")
	ErrInvalidDecision   = errors.New("invalid owner decision")
)

// Quote is the price/validity result for a requested date range. Callers must
// not create a booking while Valid is false.
type Quote struct {
	Days       int     `json:"days"`
	TotalPrice float64 `json:"total_price"`
	Valid      bool    `json:"is_valid"`
}

// ComputeQuote derives rental duration and total price from two wire-format
// calendar dates and a daily rate. Rules: unparseable input or a negative
// range is invalid; identical dates bill as a one-day rental; any valid range
// bills at least one day. The price is fixed here, at creation time, and is
// not recomputed if the vehicle's rate later changes.
func ComputeQuote(startDate, endDate string, dailyRate float64) Quote {
	if dailyRate <= 0 {
		return Quote{}
	}

	start, err := utils.ParseBookingDate(startDate)
	if err != nil {
		return Quote{}
	}
	end, err := utils.ParseBookingDate(endDate)
	if err != nil {
		return Quote{}
	}

	if end.Before(start) {
		return Quote{}
	}

	days := utils.CalendarDaysBetween(start, end)
	if days < utils.MinRentalDays {
		days = utils.MinRentalDays
	}

	return Quote{
		Days:       days,
		TotalPrice: float64(days) * dailyRate,
		Valid:      true,
	}
}

// TransactionRunner runs dependent writes atomically. The payment insert and
// the booking's flip to confirmed must land together or not at all.
type TransactionRunner interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookingService interface {
	Quote(ctx context.Context, vehicleID primitive.ObjectID, startDate, endDate string) (*Quote, error)
	CreateBooking(ctx context.Context, userID primitive.ObjectID, request *CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id, userID primitive.ObjectID) (*BookingDetail, error)
	GetUserBookings(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*BookingDetail, int64, error)
	GetOwnerBookings(ctx context.Context, ownerID primitive.ObjectID, params *utils.PaginationParams) ([]*BookingDetail, int64, error)
	ConfirmBooking(ctx context.Context, id, userID primitive.ObjectID, method models.PaymentMethod) (*BookingDetail, error)
	CancelBooking(ctx context.Context, id, userID primitive.ObjectID) (*models.Booking, error)
	DecideBooking(ctx context.Context, id, ownerID primitive.ObjectID, decision models.OwnerDecision) error
}

type CreateBookingRequest struct {
	VehicleID      primitive.ObjectID `json:"vehicle_id"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	PickupAddress  string             `json:"pickup_address"`
	DropoffAddress string             `json:"dropoff_address"`
}

// BookingDetail pairs a booking with its derived cancellation view and, once
// confirmed, its payment record.
type BookingDetail struct {
	Booking      *models.Booking          `json:"booking"`
	Cancellation models.CancellationState `json:"cancellation"`
	Payment      *models.Payment          `json:"payment,omitempty"`
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	vehicleRepo interfaces.VehicleRepository
	paymentRepo interfaces.PaymentRepository
	gateway     payment.PaymentProvider
	tx          TransactionRunner
	cfg         *config.BookingConfig
	currency    string
	logger      *logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	vehicleRepo interfaces.VehicleRepository,
	paymentRepo interfaces.PaymentRepository,
	gateway payment.PaymentProvider,
	tx TransactionRunner,
	cfg *config.BookingConfig,
	currency string,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		tx:          tx,
		cfg:         cfg,
		currency:    currency,
		logger:      log,
		now:         time.Now,
	}
}

func (s *bookingService) Quote(ctx context.Context, vehicleID primitive.ObjectID, startDate, endDate string) (*Quote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	quote := ComputeQuote(startDate, endDate, vehicle.DailyRate)
	return &quote, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, request *CreateBookingRequest) (*models.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, request.VehicleID)
	if err != nil {
		return nil, err
	}

	quote := ComputeQuote(request.StartDate, request.EndDate, vehicle.DailyRate)
	if !quote.Valid {
		return nil, ErrInvalidDateRange
	}

	start, _ := utils.ParseBookingDate(request.StartDate)
	end, _ := utils.ParseBookingDate(request.EndDate)

	if s.cfg.OverlapPolicy == config.OverlapPolicyReject {
		count, err := s.bookingRepo.CountOverlapping(ctx, vehicle.ID, start, end)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrBookingOverlap
		}
	}

	booking := &models.Booking{
		VehicleID:      vehicle.ID,
		UserID:         userID,
		StartDate:      start,
		EndDate:        end,
		Days:           quote.Days,
		TotalPrice:     quote.TotalPrice,
		Status:         models.BookingStatusPending,
		OwnerDecision:  models.OwnerDecisionPending,
		PickupAddress:  request.PickupAddress,
		DropoffAddress: request.DropoffAddress,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.ID, utils.EventBookingCreated, map[string]interface{}{
		"vehicle_id":  vehicle.ID.Hex(),
		"days":        booking.Days,
		"total_price": booking.TotalPrice,
	})

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id, userID primitive.ObjectID) (*BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		// The vehicle owner may also view bookings on their vehicle.
		vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
		if err != nil || vehicle.OwnerID != userID {
			return nil, ErrNotBookingOwner
		}
	}

	return s.toDetail(ctx, booking), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*BookingDetail, int64, error) {
	bookings, total, err := s.bookingRepo.GetByUserID(ctx, userID, params)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, s.toDetail(ctx, booking))
	}

	return details, total, nil
}

func (s *bookingService) GetOwnerBookings(ctx context.Context, ownerID primitive.ObjectID, params *utils.PaginationParams) ([]*BookingDetail, int64, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	vehicleIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	bookings, total, err := s.bookingRepo.GetByVehicleIDs(ctx, vehicleIDs, params)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, s.toDetail(ctx, booking))
	}

	return details, total, nil
}

// ConfirmBooking charges the mock gateway and then, in a single transaction,
// records the payment and flips the booking to confirmed. The original flow
// issued the two writes independently, which could strand a paid booking in
// pending; the transaction closes that gap.
func (s *bookingService) ConfirmBooking(ctx context.Context, id, userID primitive.ObjectID, method models.PaymentMethod) (*BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if !booking.CanTransitionTo(models.BookingStatusConfirmed) {
		return nil, ErrBookingNotPending
	}
	if !models.IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}

	charge, err := s.gateway.ProcessPayment(ctx, &payment.PaymentRequest{
		Amount:     booking.TotalPrice,
		Currency:   s.currency,
		Method:     string(method),
		CustomerID: userID.Hex(),
		Description: fmt.Sprintf("booking %s, %d day(s)",
			booking.ID.Hex(), booking.Days),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", utils.ErrPaymentFailed, err)
	}

	record := &models.Payment{
		BookingID:     booking.ID,
		UserID:        userID,
		Amount:        booking.TotalPrice,
		Currency:      s.currency,
		Status:        models.PaymentStatusCompleted,
		PaymentMethod: method,
		TransactionID: charge.TransactionID,
	}

	err = s.tx.RunTransaction(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.Create(txCtx, record); err != nil {
			return err
		}
		return s.bookingRepo.Update(txCtx, booking.ID, map[string]interface{}{
			"status":     models.BookingStatusConfirmed,
			"payment_id": record.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusConfirmed
	booking.PaymentID = &record.ID

	s.logger.LogPaymentEvent(record.ID, utils.EventPaymentProcessed, record.Amount, record.Currency)
	s.logger.LogBookingEvent(booking.ID, utils.EventBookingConfirmed, map[string]interface{}{
		"transaction_id": record.TransactionID,
		"method":         string(method),
	})

	detail := s.toDetail(ctx, booking)
	detail.Payment = record
	return detail, nil
}

// CancelBooking applies the renter cancellation rule: pending or confirmed,
// and more than 24 hours before the rental starts. There is no refund path;
// an existing payment record is left untouched.
func (s *bookingService) CancelBooking(ctx context.Context, id, userID primitive.ObjectID) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	state := booking.CancellationState(s.now())
	if !state.IsCancellable {
		return nil, ErrNotCancellable
	}

	cancelledAt := s.now()
	err = s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{
		"status":       models.BookingStatusCancelled,
		"cancelled_at": cancelledAt,
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &cancelledAt

	s.logger.LogBookingEvent(booking.ID, utils.EventBookingCancelled, map[string]interface{}{
		"hours_until_start": state.HoursUntilStart,
	})

	return booking, nil
}

func (s *bookingService) DecideBooking(ctx context.Context, id, ownerID primitive.ObjectID, decision models.OwnerDecision) error {
	if decision != models.OwnerDecisionAccepted && decision != models.OwnerDecisionRejected {
		return ErrInvalidDecision
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status != models.BookingStatusPending {
		return ErrBookingNotPending
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != ownerID {
		return ErrNotVehicleOwner
	}

	// The decision is owner-facing metadata; the renter-visible status is
	// governed solely by the pending/confirmed/cancelled machine.
	return s.bookingRepo.Update(ctx, booking.ID, map[string]interface{}{
		"owner_decision": decision,
	})
}

func (s *bookingService) toDetail(ctx context.Context, booking *models.Booking) *BookingDetail {
	detail := &BookingDetail{
		Booking:      booking,
		Cancellation: booking.CancellationState(s.now()),
	}

	if booking.StartDate.IsZero() {
		s.logger.WithBookingID(booking.ID).Warn("Booking has no start date; cancellation disabled")
	}

	if booking.PaymentID != nil {
		if p, err := s.paymentRepo.GetByID(ctx, *booking.PaymentID); err == nil {
			detail.Payment = p
		}
	}

	return detail
}
