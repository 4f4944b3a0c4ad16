package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/qolzam/jobly/internal/types"
	"github.com/qolzam/jobly/users/errors"
	"github.com/qolzam/jobly/users/models"
	"github.com/qolzam/jobly/users/services"
	"github.com/qolzam/jobly/users/validation"
)

// TokenIssuer mints an access token for a user.
type TokenIssuer interface {
	Issue(user types.UserContext) (string, error)
}

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	tokens      TokenIssuer
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService, tokens TokenIssuer) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokens}
}

// CreateUser handles admin user creation and returns the new user's token
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}
	if req.Username == "" {
		return errors.HandleMissingFieldError(c, "username")
	}
	if req.Password == "" {
		return errors.HandleMissingFieldError(c, "password")
	}
	if err := validation.ValidateCreateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	user, err := h.userService.CreateUser(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.tokens.Issue(types.UserContext{Username: user.Username, SystemRole: types.RoleFor(user.IsAdmin)})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles retrieving a user with their applications
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles partial user updates. Only admins may change isAdmin.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleInvalidRequestError(c, err.Error())
	}
	if err := validation.ValidateUpdateUserRequest(&req); err != nil {
		return errors.HandleValidationError(c, err.Error())
	}

	if req.IsAdmin != nil {
		current, ok := authjwt.CurrentUser(c)
		if !ok || !current.IsAdmin() {
			return errors.HandlePermissionError(c, "Only admins can change isAdmin")
		}
	}

	user, err := h.userService.UpdateUser(c.UserContext(), c.Params("username"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles user removal
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.DeleteUser(c.UserContext(), username); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": username})
}

// ApplyToJob handles POST /users/:username/jobs/:id
func (h *UserHandler) ApplyToJob(c *fiber.Ctx) error {
	jobID, err := constraints.ParseID(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.userService.ApplyToJob(c.UserContext(), c.Params("username"), jobID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"applied": jobID})
}
