package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabride/internal/fare"
	"cabride/internal/repository"
	"cabride/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrReceiptNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, fare.ErrUnknownLocation),
		errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidDriverStatus),
		errors.Is(err, service.ErrCannotSetBusy),
		errors.Is(err, service.ErrInvalidRiderName),
		errors.Is(err, service.ErrInvalidRiderEmail):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrRiderAlreadyActive),
		errors.Is(err, service.ErrNoDriverAvailable),
		errors.Is(err, service.ErrRideAlreadyEnded),
		errors.Is(err, service.ErrRideNotCompleted),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrRideNotFinished),
		errors.Is(err, service.ErrAlreadyRated),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Ownership errors
	case errors.Is(err, service.ErrNotRideParticipant):
		return http.StatusForbidden

	// External dependency failure
	case errors.Is(err, service.ErrPaymentGateway):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
