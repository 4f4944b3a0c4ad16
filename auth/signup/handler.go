package signup

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/qolzam/jobly/users/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{svc: s}
}

// Handle serves POST /auth/register.
func (h *Handler) Handle(c *fiber.Ctx) error {
	var model RegisterRequest
	if err := parser.Body(c, &model); err != nil {
		return authErrors.HandleInvalidRequestError(c, err.Error())
	}

	switch {
	case model.Username == "":
		return authErrors.HandleMissingFieldError(c, "username")
	case model.Password == "":
		return authErrors.HandleMissingFieldError(c, "password")
	case model.Email == "":
		return authErrors.HandleMissingFieldError(c, "email")
	}
	if err := validation.ValidateCreateUserRequest(model.toCreateUser()); err != nil {
		return authErrors.HandleValidationError(c, err.Error())
	}

	token, err := h.svc.Register(c.UserContext(), &model)
	if err != nil {
		return authErrors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(login.TokenResponse{Token: token})
}
