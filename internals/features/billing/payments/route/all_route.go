package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/payments/controller"
	notifService "rapatku_backend/internals/features/home/notifications/service"
	"rapatku_backend/internals/middlewares"
)

func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentUserController(db)

	payments := user.Group("/payments")
	payments.Post("/", middlewares.SubmitPaymentRateLimiter(), ctrl.SubmitPayment) // ➕ Ajukan pembayaran
	payments.Get("/", ctrl.ListMyPayments)                     // 📄 Riwayat saya
	payments.Get("/settle-all/quote", ctrl.QuoteSettleAll)     // 💰 Nominal lunasi semua
	payments.Post("/:id/checkout", ctrl.Checkout)              // 💳 Checkout Midtrans
	payments.Delete("/:id", ctrl.DeletePendingPayment)         // 🗑️ Tarik submission

	user.Get("/summary", ctrl.GetMySummary) // 📊 Neraca saya
}

func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentAdminController(db, notifService.NewEmitter(db))

	payments := admin.Group("/payments")
	payments.Get("/", ctrl.ListPayments)                    // 📄 Antrian pembayaran
	payments.Post("/:id/approve", ctrl.ApprovePayment)      // ✅ Setujui (settlement FIFO)
	payments.Post("/:id/reject", ctrl.RejectPayment)        // ❌ Tolak dengan alasan
	payments.Patch("/:id/resolve", ctrl.ResolveRejectedPayment) // ✔️ Tandai rejected selesai
	payments.Delete("/:id", ctrl.DeleteApprovedPayment)     // 🗑️ Reversal approved

	admin.Get("/clients/:client_id/summary", ctrl.GetClientSummary) // 📊 Neraca client
}

func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentWebhookController(db)

	public.Post("/payments/webhook", middlewares.WebhookRateLimiter(), ctrl.HandleMidtransNotification) // 🔔 Webhook Midtrans
}
