package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/configs"
	"rapatku_backend/internals/features/billing/dues/controller"
	duesService "rapatku_backend/internals/features/billing/dues/service"
)

func newController(db *gorm.DB) *controller.DueController {
	recomputer := duesService.NewRecomputer(db, configs.DefaultPremiumRateIDR())
	return controller.NewDueController(db, recomputer)
}

func DueUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := newController(db)

	dues := user.Group("/dues")
	dues.Get("/", ctrl.ListMyDues) // 📄 Tagihan harian saya
}

func DueAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := newController(db)

	dues := admin.Group("/clients/:client_id/dues")
	dues.Get("/", ctrl.ListClientDues)               // 📄 Tagihan client
	dues.Put("/adjustment", ctrl.SetManualAdjustment) // ✏️ Koreksi manual
	dues.Post("/recompute", ctrl.RecomputeRange)      // 🔁 Hitung ulang rentang
}
