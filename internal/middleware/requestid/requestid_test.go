package requestid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seenLocal, seenCtx string

	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		seenLocal = GetRequestID(c)
		seenCtx = log.RequestID(c.UserContext())
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		id := resp.Header.Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seenLocal)
		assert.Equal(t, id, seenCtx)
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderRequestID, "trace-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "trace-1", resp.Header.Get(HeaderRequestID))
		assert.Equal(t, "trace-1", seenLocal)
	})
}
