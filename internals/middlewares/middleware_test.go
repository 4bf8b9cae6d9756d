package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalRateLimiterCoversAPISurface(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app)
	app.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	var lastStatus int
	for i := 0; i < 101; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
		require.NoError(t, err)
		lastStatus = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, lastStatus)
}

func TestGlobalRateLimiterSkipsNonAPIPaths(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 110; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
