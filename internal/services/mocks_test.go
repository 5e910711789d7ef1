package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository interfaces. They apply the same partial
// update keys the mongo implementations do, and share an optional call log so
// tests can assert cross-repository ordering.

type memBookingRepo struct {
	bookings  map[primitive.ObjectID]*models.Booking
	updateErr error
	deleteErr error
	calls     *[]string
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (r *memBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	copied := *booking
	return &copied, nil
}

func (r *memBookingRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	if status, ok := updates["status"]; ok {
		booking.Status = status.(models.BookingStatus)
	}
	if paymentID, ok := updates["payment_id"]; ok {
		pid := paymentID.(primitive.ObjectID)
		booking.PaymentID = &pid
	}
	if cancelledAt, ok := updates["cancelled_at"]; ok {
		at := cancelledAt.(time.Time)
		booking.CancelledAt = &at
	}
	if decision, ok := updates["owner_decision"]; ok {
		booking.OwnerDecision = decision.(models.OwnerDecision)
	}
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *memBookingRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var result []*models.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memBookingRepo) GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Booking, error) {
	var result []*models.Booking
	for _, booking := range r.bookings {
		if booking.VehicleID == vehicleID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (r *memBookingRepo) GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var result []*models.Booking
	for _, booking := range r.bookings {
		for _, id := range vehicleIDs {
			if booking.VehicleID == id {
				result = append(result, booking)
				break
			}
		}
	}
	return result, int64(len(result)), nil
}

func (r *memBookingRepo) CountOverlapping(ctx context.Context, vehicleID primitive.ObjectID, start, end time.Time) (int64, error) {
	var count int64
	for _, booking := range r.bookings {
		if booking.VehicleID != vehicleID {
			continue
		}
		if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
			continue
		}
		if !booking.StartDate.After(end) && !booking.EndDate.Before(start) {
			count++
		}
	}
	return count, nil
}

func (r *memBookingRepo) DeleteByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) error {
	if r.calls != nil {
		*r.calls = append(*r.calls, "delete_bookings")
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for id, booking := range r.bookings {
		if booking.VehicleID == vehicleID {
			delete(r.bookings, id)
		}
	}
	return nil
}

type memUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.New(utils.ErrUserExists)
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, interfaces.ErrNotFound)
}

func (r *memUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	if firstName, ok := updates["first_name"]; ok {
		user.FirstName = firstName.(string)
	}
	if lastName, ok := updates["last_name"]; ok {
		user.LastName = lastName.(string)
	}
	if phone, ok := updates["phone"]; ok {
		user.Phone = phone.(string)
	}
	if avatarURL, ok := updates["avatar_url"]; ok {
		user.AvatarURL = avatarURL.(string)
	}
	if password, ok := updates["password"]; ok {
		user.Password = password.(string)
	}
	if verified, ok := updates["is_email_verified"]; ok {
		user.IsEmailVerified = verified.(bool)
	}
	if lastLogin, ok := updates["last_login_at"]; ok {
		at := lastLogin.(time.Time)
		user.LastLoginAt = &at
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, map[string]interface{}{"last_login_at": time.Now()})
}

func (r *memUserRepo) SetEmailVerified(ctx context.Context, id primitive.ObjectID, verified bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_email_verified": verified})
}

type memVehicleRepo struct {
	vehicles map[primitive.ObjectID]*models.Vehicle
	calls    *[]string
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
}

func (r *memVehicleRepo) add(vehicle *models.Vehicle) *models.Vehicle {
	if vehicle.ID.IsZero() {
		vehicle.ID = primitive.NewObjectID()
	}
	r.vehicles[vehicle.ID] = vehicle
	return vehicle
}

func (r *memVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.add(vehicle)
	return nil
}

func (r *memVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	copied := *vehicle
	return &copied, nil
}

func (r *memVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	if rate, ok := updates["daily_rate"]; ok {
		vehicle.DailyRate = rate.(float64)
	}
	if available, ok := updates["available"]; ok {
		vehicle.Available = available.(bool)
	}
	return nil
}

func (r *memVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.calls != nil {
		*r.calls = append(*r.calls, "delete_vehicle")
	}
	if _, ok := r.vehicles[id]; !ok {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	delete(r.vehicles, id)
	return nil
}

func (r *memVehicleRepo) List(ctx context.Context, filter *models.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	var result []*models.Vehicle
	for _, vehicle := range r.vehicles {
		if filter.Matches(vehicle) {
			result = append(result, vehicle)
		}
	}
	return result, int64(len(result)), nil
}

func (r *memVehicleRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, vehicle := range r.vehicles {
		if vehicle.OwnerID == ownerID {
			result = append(result, vehicle)
		}
	}
	return result, nil
}

type memPaymentRepo struct {
	payments  map[primitive.ObjectID]*models.Payment
	createErr error
	deleteErr error
	calls     *[]string
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[primitive.ObjectID]*models.Payment)}
}

func (r *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if r.createErr != nil {
		return r.createErr
	}
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	r.payments[payment.ID] = payment
	return nil
}

func (r *memPaymentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", id.Hex(), interfaces.ErrNotFound)
	}
	return payment, nil
}

func (r *memPaymentRepo) GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Payment, error) {
	for _, payment := range r.payments {
		if payment.BookingID == bookingID {
			return payment, nil
		}
	}
	return nil, fmt.Errorf("payment for booking %s: %w", bookingID.Hex(), interfaces.ErrNotFound)
}

func (r *memPaymentRepo) DeleteByBookingIDs(ctx context.Context, bookingIDs []primitive.ObjectID) error {
	if r.calls != nil {
		*r.calls = append(*r.calls, "delete_payments")
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for id, payment := range r.payments {
		for _, bookingID := range bookingIDs {
			if payment.BookingID == bookingID {
				delete(r.payments, id)
				break
			}
		}
	}
	return nil
}

// memTxRunner runs the callback directly. A non-nil err simulates a
// transaction that could not commit.
type memTxRunner struct {
	runs int
	err  error
}

func (t *memTxRunner) RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.runs++
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	if err != nil {
		panic(err)
	}
	return log
}

var errStorage = errors.New("storage unavailable")
