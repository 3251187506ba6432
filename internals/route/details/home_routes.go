package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "rapatku_backend/internals/features/home/notifications/route"
)

// HomeUserRoutes: fitur pelengkap dashboard (notifikasi in-app)
func HomeUserRoutes(user fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationUserRoutes(user, db)
}
