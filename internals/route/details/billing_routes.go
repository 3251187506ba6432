package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advanceRoute "rapatku_backend/internals/features/billing/advances/route"
	clientRoute "rapatku_backend/internals/features/billing/clients/route"
	dueRoute "rapatku_backend/internals/features/billing/dues/route"
	meetingRoute "rapatku_backend/internals/features/billing/meetings/route"
	paymentRoute "rapatku_backend/internals/features/billing/payments/route"
)

// BillingPublicRoutes: endpoint tanpa JWT (webhook gateway)
func BillingPublicRoutes(public fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentPublicRoutes(public, db)
}

// BillingUserRoutes: sisi client (token dengan client_id)
func BillingUserRoutes(user fiber.Router, db *gorm.DB) {
	meetingRoute.MeetingUserRoutes(user, db)
	dueRoute.DueUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)
}

// BillingAdminRoutes: sisi admin (role admin/owner)
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	clientRoute.ClientAdminRoutes(admin, db)
	meetingRoute.MeetingAdminRoutes(admin, db)
	dueRoute.DueAdminRoutes(admin, db)
	advanceRoute.AdvanceAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
}
