package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := user.Group("/notifications")
	notification.Get("/", ctrl.GetMyNotifications)   // 🟢 Notifikasi saya + broadcast
	notification.Patch("/:id/read", ctrl.MarkAsRead) // 🟢 Tandai dibaca
}
