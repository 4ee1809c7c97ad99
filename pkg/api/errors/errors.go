package errors

import (
	"errors"
	"log"
	"net/http"

	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// Handle maps a service error to the right HTTP response. Domain
// errors carry their kind; anything else is treated as internal.
func Handle(c echo.Context, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		switch de.Code {
		case domain.ErrCodeNotFound:
			return NotFoundError(c, de.Message)
		case domain.ErrCodeValidation, domain.ErrCodeBadRequest:
			return ValidationError(c, err)
		case domain.ErrCodeUnauthorized:
			return UnauthorizedError(c, de.Message)
		case domain.ErrCodeConflict:
			return ConflictError(c, de.Message)
		}
	}
	return InternalError(c, err)
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context, reason string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message,
	})
}
