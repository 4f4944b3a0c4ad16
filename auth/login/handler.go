package login

import (
	"time"

	"github.com/gofiber/fiber/v2"
	authErrors "github.com/qolzam/jobly/auth/errors"
	"github.com/qolzam/jobly/internal/pkg/parser"
	"github.com/qolzam/jobly/internal/types"
)

type Handler struct {
	svc    *Service
	config *HandlerConfig
}

type HandlerConfig struct {
	WebDomain string
	TokenTTL  time.Duration
	// SecureCookie marks the access token cookie Secure.
	SecureCookie bool
}

func NewHandler(s *Service, config *HandlerConfig) *Handler {
	return &Handler{svc: s, config: config}
}

// Handle serves POST /auth/token. The token is returned in the body and set
// as the access token cookie.
func (h *Handler) Handle(c *fiber.Ctx) error {
	var model LoginRequest
	if err := parser.Body(c, &model); err != nil {
		return authErrors.HandleInvalidRequestError(c, err.Error())
	}

	if model.Username == "" {
		return authErrors.HandleMissingFieldError(c, "username")
	}
	if model.Password == "" {
		return authErrors.HandleMissingFieldError(c, "password")
	}

	token, err := h.svc.Login(c.UserContext(), model.Username, model.Password)
	if err != nil {
		return authErrors.HandleServiceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    token,
		Domain:   h.config.WebDomain,
		Path:     "/",
		Expires:  time.Now().Add(h.config.TokenTTL),
		HTTPOnly: true,
		Secure:   h.config.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(TokenResponse{Token: token})
}
