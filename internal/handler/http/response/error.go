package response

import (
	"errors"
	"net/http"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/auth"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/payroll"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/user"
	"github.com/andresaoe/mi-jornada-calculada/internal/domain/workday"
	"github.com/andresaoe/mi-jornada-calculada/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Work day domain errors
	case errors.Is(err, workday.ErrWorkDayNotFound):
		NotFound(w, "Work day not found")
	case errors.Is(err, workday.ErrWorkDayExists):
		Conflict(w, "A work day is already registered for this date")
	case errors.Is(err, workday.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, workday.ErrDateRangeTooLarge):
		BadRequest(w, "Date range exceeds 92 days", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrConfigNotFound):
		NotFound(w, "Payroll configuration not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
