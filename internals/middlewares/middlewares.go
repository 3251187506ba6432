package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"rapatku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar (urutan penting: recovery paling awal)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
