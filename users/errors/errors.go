package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/clause"
)

// User service specific errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrJobNotFound        = errors.New("job not found")
	ErrAlreadyApplied     = errors.New("already applied to job")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

// Error codes
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeJobNotFound          = "JOB_NOT_FOUND"
	CodeUserAlreadyExists    = "USER_ALREADY_EXISTS"
	CodeAlreadyApplied       = "ALREADY_APPLIED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodePermissionDenied     = "PERMISSION_DENIED"
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
	case clause.IsValidation(err), errors.Is(err, ErrInvalidUserData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid user data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username/password",
		})
	case errors.Is(err, ErrPermissionDenied):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Code:    CodePermissionDenied,
			Message: "Permission denied",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeUserNotFound,
			Message: "User not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUserAlreadyExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeUserAlreadyExists,
			Message: "User already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAlreadyApplied):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeAlreadyApplied,
			Message: "Already applied to job",
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

// HandlePermissionError handles permission errors with 403 Forbidden
func HandlePermissionError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusForbidden).JSON(ErrorResponse{
		Code:    CodePermissionDenied,
		Message: message,
		Details: message,
	})
}
