package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/payments/service"
)

type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// 🔔 POST /api/public/payments/webhook — notifikasi status dari Midtrans.
// Balas 200 kecuali payloadnya rusak, supaya Midtrans tidak retry terus.
func (ctrl *PaymentWebhookController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook"})
	}

	log.Println("Received midtrans webhook:", body["order_id"], body["transaction_status"])

	if err := service.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
