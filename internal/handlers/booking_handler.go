package handlers

import (
	"gorent/internal/models"
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Quote prices a date range against a vehicle without creating anything
func (h *BookingHandler) Quote(c *gin.Context) {
	var request validators.BookingQuoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBookingQuote(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	vehicleID, _ := primitive.ObjectIDFromHex(request.VehicleID)
	quote, err := h.bookingService.Quote(c.Request.Context(), vehicleID, request.StartDate, request.EndDate)
	if err != nil {
		respondRepositoryError(c, err, "Vehicle")
		return
	}

	utils.SuccessResponse(c, "Quote computed successfully", quote)
}

// CreateBooking creates a pending booking with a locked-in price
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBookingCreate(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	vehicleID, _ := primitive.ObjectIDFromHex(request.VehicleID)
	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, &services.CreateBookingRequest{
		VehicleID:      vehicleID,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		PickupAddress:  request.PickupAddress,
		DropoffAddress: request.DropoffAddress,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.CreatedResponse(c, "Booking created successfully", booking)
}

// GetBooking returns one booking with its cancellation window state
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	detail, err := h.bookingService.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking retrieved successfully", detail)
}

// GetMyBookings returns the caller's bookings as renter
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	details, total, err := h.bookingService.GetUserBookings(c.Request.Context(), userID, params)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved successfully", map[string]interface{}{
		"bookings": details,
	}, meta)
}

// GetOwnerBookings returns bookings placed on the caller's vehicles
func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	details, total, err := h.bookingService.GetOwnerBookings(c.Request.Context(), userID, params)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved successfully", map[string]interface{}{
		"bookings": details,
	}, meta)
}

// Pay charges the booking total and confirms the booking
func (h *BookingHandler) Pay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var request validators.BookingPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	detail, err := h.bookingService.ConfirmBooking(c.Request.Context(), bookingID, userID, models.PaymentMethod(request.PaymentMethod))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment processed and booking confirmed", detail)
}

// Cancel cancels a booking while the 24-hour window is still open
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled successfully", booking)
}

// Decide records the vehicle owner's accept/reject on a pending booking
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var request validators.BookingDecisionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	err = h.bookingService.DecideBooking(c.Request.Context(), bookingID, userID, models.OwnerDecision(request.Decision))
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.SuccessResponse(c, "Decision recorded successfully", nil)
}
