package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/clients/controller"
)

func ClientAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClientController(db)

	clients := admin.Group("/clients")
	clients.Post("/", ctrl.CreateClient)      // ➕ Daftarkan client
	clients.Get("/", ctrl.ListClients)        // 📄 Daftar client
	clients.Get("/:id", ctrl.GetClientByID)   // 🔍 Detail client
	clients.Put("/:id", ctrl.UpdateClient)    // ✏️ Update data & rate
	clients.Delete("/:id", ctrl.DeleteClient) // 🗑️ Soft delete
}
