package authjwt

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/types"
)

// Config defines the config for the JWT middleware.
type Config struct {
	// The EC public key for validating ES256 tokens.
	PublicKey string
	// The context key to store the UserContext.
	UserCtxName string
}

// New creates a middleware that authenticates the bearer token when one is
// present. Requests without a token pass through anonymously; a token that
// fails verification is rejected with 401.
func New(cfg Config) fiber.Handler {
	publicKey, err := tokens.ParsePublicKey(cfg.PublicKey)
	if err != nil {
		panic(fmt.Sprintf("authjwt: %v", err))
	}

	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Next()
		}

		userCtx, err := tokens.Verify(tokenString, publicKey)
		if err != nil {
			log.WarnWithContext(c.UserContext(), "[authjwt] rejected token from %s: %v", c.IP(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid token",
			})
		}

		c.Locals(userKey, userCtx)
		return c.Next()
	}
}

// Required rejects requests that carry no authenticated user.
func Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUser(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}

// extractToken reads the Authorization header first, then the access_token cookie.
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get(types.HeaderAuthorization)
	if strings.HasPrefix(authHeader, types.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, types.BearerPrefix))
	}
	return c.Cookies(types.AccessTokenCookie)
}
