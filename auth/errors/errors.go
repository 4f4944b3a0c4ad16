package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	userErrors "github.com/qolzam/jobly/users/errors"
)

// Auth service specific errors
var (
	ErrWeakPassword = errors.New("password is not strong enough")
	ErrTokenIssue   = errors.New("could not issue token")
)

// Error codes for auth service
const (
	CodeWeakPassword     = "WEAK_PASSWORD"
	CodeTokenIssueFailed = "TOKEN_ISSUE_FAILED"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse = userErrors.ErrorResponse

// HandleServiceError maps auth errors and defers everything else to the
// user error mapping, since both endpoints operate on users.
func HandleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrWeakPassword):
		return HandleWeakPasswordError(c)
	case errors.Is(err, ErrTokenIssue):
		return HandleTokenError(c)
	}
	return userErrors.HandleServiceError(c, err)
}

// HandleWeakPasswordError handles rejected passwords with 400 Bad Request
func HandleWeakPasswordError(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeWeakPassword,
		Message: "Password is not strong enough!",
	})
}

// HandleTokenError handles token signing failures with 500 Internal Server Error
func HandleTokenError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Code:    CodeTokenIssueFailed,
		Message: "Could not issue token",
	})
}

// HandleMissingFieldError handles missing required field errors with 400 Bad Request
func HandleMissingFieldError(c *fiber.Ctx, fieldName string) error {
	return userErrors.HandleMissingFieldError(c, fieldName)
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return userErrors.HandleInvalidRequestError(c, message)
}

// HandleValidationError handles validation errors with 400 Bad Request
func HandleValidationError(c *fiber.Ctx, message string) error {
	return userErrors.HandleValidationError(c, message)
}
