package handlers

import (
	"errors"
	"net/http"

	"gorent/internal/repositories/interfaces"
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"

	"github.com/gin-gonic/gin"
)

func respondValidationErrors(c *gin.Context, errs validators.ValidationErrors) {
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field] = err.Message
	}
	utils.ValidationErrorResponse(c, details)
}

// respondRepositoryError distinguishes a missing record from a backend
// failure: the former is the caller's problem, the latter is ours.
func respondRepositoryError(c *gin.Context, err error, resource string) {
	if errors.Is(err, interfaces.ErrNotFound) {
		utils.NotFoundResponse(c, resource)
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, "STORAGE_ERROR", utils.ErrInternalServer)
}

// respondBookingError maps booking service sentinels onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		utils.NotFoundResponse(c, "Booking")
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrBookingOverlap):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrBookingNotPending),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrInvalidDecision):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "BOOKING_STATE", err.Error())
	case errors.Is(err, services.ErrNotBookingOwner),
		errors.Is(err, services.ErrNotVehicleOwner):
		utils.ForbiddenResponse(c)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "BOOKING_ERROR", utils.ErrInternalServer)
	}
}
