// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/constants"
	authMiddleware "rapatku_backend/internals/middlewares/auth"
	routeDetails "rapatku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== PUBLIC =====================
	// Webhook gateway: tanpa JWT, Midtrans yang memanggil
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== PRIVATE (CLIENT) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", jwt)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		jwt,
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("billing"),
			constants.AdminAndAbove...,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Billing routes...")
	routeDetails.BillingPublicRoutes(public, db)
	routeDetails.BillingUserRoutes(private, db)
	routeDetails.BillingAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeUserRoutes(private, db)
}
