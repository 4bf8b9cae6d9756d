package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"volunteerhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery first so panics in anything below still return 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use("/api", GlobalRateLimiter())
}
