package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "gerejaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global berurutan:
// recovery paling luar, lalu CORS, logger, dan rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
