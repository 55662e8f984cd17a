package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"maintenance-ticketing-server/services"
)

const dateLayout = "2006-01-02"

// handleServiceError maps lifecycle errors to HTTP responses. Ownership
// mismatches and missing tickets share one body, and datastore failures
// never leak internals.
func handleServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": verr.Messages,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication failed",
			"message": "Invalid credentials. Please try again.",
		})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Email already registered",
			"message": "An account with this email already exists.",
		})
	case errors.Is(err, services.ErrDuplicateSerial):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Serial number already registered",
			"message": "A device with this serial number already exists.",
		})
	case errors.Is(err, services.ErrAlreadyClosed):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Ticket already closed",
			"message": "Feedback has already been submitted for this ticket.",
		})
	case errors.Is(err, services.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Ticket not found",
			"message": "The requested ticket does not exist.",
		})
	case errors.Is(err, services.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Device not found",
			"message": "The requested device does not exist.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Request failed",
			"message": "Unable to process request. Please try again later.",
		})
	}
}

// parseDate parses an optional YYYY-MM-DD field. An empty value yields the
// zero time, which the services default to today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

// respondInvalidDate reports a malformed date field as a validation error
func respondInvalidDate(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Validation failed",
		"errors": []string{field + " must be a valid date in YYYY-MM-DD format."},
	})
}
