package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/configs"
	duesService "rapatku_backend/internals/features/billing/dues/service"
	"rapatku_backend/internals/features/billing/meetings/controller"
)

func MeetingUserRoutes(user fiber.Router, db *gorm.DB) {
	recomputer := duesService.NewRecomputer(db, configs.DefaultPremiumRateIDR())
	ctrl := controller.NewMeetingController(db, recomputer)

	meetings := user.Group("/meetings")
	meetings.Post("/", ctrl.CreateMeeting)           // ➕ Catat meeting
	meetings.Get("/", ctrl.ListMyMeetings)           // 📄 Daftar meeting saya
	meetings.Put("/:id", ctrl.UpdateMeeting)         // ✏️ Koreksi meeting
	meetings.Patch("/:id/proof", ctrl.AttachProof)   // 📎 Lampirkan bukti
	meetings.Delete("/:id", ctrl.DeleteMeeting)      // 🗑️ Hapus meeting
}

func MeetingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	recomputer := duesService.NewRecomputer(db, configs.DefaultPremiumRateIDR())
	ctrl := controller.NewMeetingController(db, recomputer)

	admin.Get("/clients/:client_id/meetings", ctrl.ListClientMeetings) // 📄 Meeting per client
}
