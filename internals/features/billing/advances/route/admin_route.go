package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/advances/controller"
)

func AdvanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdvanceController(db)

	admin.Post("/advances", ctrl.CreateAdvance)                      // ➕ Setor saldo
	admin.Patch("/advances/:id/deactivate", ctrl.DeactivateAdvance)  // 🚫 Nonaktifkan

	perClient := admin.Group("/clients/:client_id/advances")
	perClient.Get("/", ctrl.ListClientAdvances)                // 📄 Saldo per client
	perClient.Get("/consumptions", ctrl.ListClientConsumptions) // 📄 Ledger konsumsi
}
