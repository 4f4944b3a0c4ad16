package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/auth/signup"
	"github.com/qolzam/jobly/internal/middleware/ratelimit"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
)

// AuthHandlers holds all the handlers this router needs.
type AuthHandlers struct {
	LoginHandler  *login.Handler
	SignupHandler *signup.Handler
	JWKSHandler   *jwks.Handler
}

// NewAuthHandlers creates a new AuthHandlers with injected dependencies
func NewAuthHandlers(loginHandler *login.Handler, signupHandler *signup.Handler, jwksHandler *jwks.Handler) *AuthHandlers {
	return &AuthHandlers{
		LoginHandler:  loginHandler,
		SignupHandler: signupHandler,
		JWKSHandler:   jwksHandler,
	}
}

// RegisterRoutes is the single entry point for setting up auth routes.
// Both credential endpoints are public and rate limited per client IP.
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers, cfg *platformconfig.Config) {
	group := app.Group("/auth")

	group.Post("/token", ratelimit.FromConfig("login", cfg.RateLimits.Login), handlers.LoginHandler.Handle)
	group.Post("/register", ratelimit.FromConfig("register", cfg.RateLimits.Register), handlers.SignupHandler.Handle)

	group.Get("/.well-known/jwks.json", handlers.JWKSHandler.Handle)
}
