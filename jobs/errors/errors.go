package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/clause"
)

// Job service specific errors
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrCompanyNotFound   = errors.New("company does not exist")
	ErrInvalidJobData    = errors.New("invalid job data")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeJobNotFound          = "JOB_NOT_FOUND"
	CodeInvalidReference     = "INVALID_REFERENCE"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeDatabaseOperation    = "DATABASE_OPERATION_FAILED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case clause.IsValidation(err), errors.Is(err, ErrInvalidJobData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid job data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidReference,
			Message: "Company does not exist",
			Details: err.Error(),
		})
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseOperation,
			Message: "Database operation failed",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: message,
		Details: message,
	})
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}

// HandleMissingFieldError handles missing required field errors with 400 Bad Request
func HandleMissingFieldError(c *fiber.Ctx, fieldName string) error {
	message := fmt.Sprintf("Missing required field: %s", fieldName)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeMissingRequiredField,
		Message: message,
		Details: message,
	})
}
