package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"swaram_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain, order matters:
// recover first so panics in later handlers still produce a response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
