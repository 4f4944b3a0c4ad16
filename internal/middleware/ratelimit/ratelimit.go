// Package ratelimit provides per-IP rate limiting for authentication endpoints.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/platform/config"
)

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Name is used in logs and the 429 message, e.g. "login".
	Name string

	Max    int
	Window time.Duration

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional - uses default IP-based if not provided)
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

func configDefault(cfg Config) Config {
	if cfg.Name == "" {
		cfg.Name = "request"
	}
	if cfg.Max <= 0 {
		cfg.Max = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}

	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	if cfg.LimitReached == nil {
		name, window := cfg.Name, cfg.Window
		cfg.LimitReached = func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] Rate limit exceeded for %s from IP: %s", name, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", name),
				"retryAfter": int(window.Seconds()),
			})
		}
	}

	return cfg
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          cfg.Max,
		Expiration:   cfg.Window,
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
	})
}

// FromConfig builds a limiter from loaded configuration. A disabled limit
// passes every request through.
func FromConfig(name string, rl config.RateLimitConfig) fiber.Handler {
	if !rl.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return New(Config{
		Name:   name,
		Max:    rl.Max,
		Window: rl.Duration,
	})
}
