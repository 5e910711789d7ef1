package utils

import "time"

// Application Constants
const (
	AppName    = "GoRent"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 8
	PasswordMaxLength  = 128

	// Rental Constants
	MinRentalDays  = 1
	MinDailyRate   = 1.0
	MaxDailyRate   = 10000.0
	BookingDateFmt = "2006-01-02"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrUserNotFound       = "user not found"
	ErrUserExists         = "user already exists"
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrValidationFailed   = "validation failed"
	ErrVehicleNotFound    = "vehicle not found"
	ErrBookingNotFound    = "booking not found"
	ErrPaymentFailed      = "payment failed"
)

// Cache Keys
const (
	CacheUserPrefix    = "user:"
	CacheVehiclePrefix = "vehicle:"
	CacheBookingPrefix = "booking:"
	CacheSessionPrefix = "session:"
)

// Event Types
const (
	EventUserRegistered   = "user_registered"
	EventUserLogin        = "user_login"
	EventBookingCreated   = "booking_created"
	EventBookingConfirmed = "booking_confirmed"
	EventBookingCancelled = "booking_cancelled"
	EventPaymentProcessed = "payment_processed"
)
