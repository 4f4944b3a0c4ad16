package constraints

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseID parses a positive id that fits a 32-bit integer column.
func ParseID(value string) (int, error) {
	id, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return int(id), nil
}

// RequireID ensures a path parameter is a positive integer.
// Anything else returns 404, as if the route did not match.
func RequireID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paramValue := c.Params(param)
		if paramValue == "" {
			return c.Next()
		}
		if _, err := ParseID(paramValue); err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Next()
	}
}
