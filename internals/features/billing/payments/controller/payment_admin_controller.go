package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/payments/dto"
	"rapatku_backend/internals/features/billing/payments/model"
	"rapatku_backend/internals/features/billing/payments/service"
	helper "rapatku_backend/internals/helpers"
)

func parsePaymentID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "ID pembayaran tidak valid")
	}
	return id, nil
}

// PaymentAdminController: sisi admin — review antrian pembayaran,
// approve/reject, reversal, dan penyelesaian nominal rejected.
type PaymentAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Notify   service.NotificationSink
}

func NewPaymentAdminController(db *gorm.DB, notify service.NotificationSink) *PaymentAdminController {
	return &PaymentAdminController{DB: db, Validate: validator.New(), Notify: notify}
}

func (ctrl *PaymentAdminController) lifecycle(tx *gorm.DB) *service.Lifecycle {
	stores := service.NewGormStores(tx)
	return service.NewLifecycle(stores, stores, stores)
}

// 📄 GET /api/a/payments — antrian pembayaran (default: pending)
func (ctrl *PaymentAdminController) ListPayments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	status := c.Query("status", model.PaymentStatusPending)
	q := ctrl.DB.Model(&model.PaymentModel{})
	if status != "all" {
		q = q.Where("payment_status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		if id, err := uuid.Parse(clientID); err == nil {
			q = q.Where("payment_client_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrian pembayaran")
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, m := range payments {
		resp = append(resp, dto.ToPaymentResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Antrian pembayaran", resp, &pg)
}

// ✅ POST /api/a/payments/:id/approve — setujui pembayaran.
// Settlement FIFO dijalankan di sini: watermark bergeser sejauh nominal
// menjangkau, kelebihan dilaporkan sebagai overpayment.
func (ctrl *PaymentAdminController) ApprovePayment(c *fiber.Ctx) error {
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	var result *service.ApproveResult
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		result, txErr = ctrl.lifecycle(tx).Approve(c.Context(), paymentID)
		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, service.ErrPaymentNotPending):
			return helper.JsonError(c, fiber.StatusConflict, "Pembayaran sudah diproses")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui pembayaran")
		}
	}

	// Notifikasi dikirim setelah transaksi commit; rollback tidak boleh
	// meninggalkan notifikasi nyasar.
	result.Notification.EmitTo(ctrl.Notify)

	return helper.JsonUpdated(c, "Pembayaran disetujui", fiber.Map{
		"payment":         dto.ToPaymentResponse(*result.Payment),
		"paid_through":    result.PaidThrough,
		"settled_dues":    result.SettledDues,
		"remaining_idr":   result.RemainingIDR,
		"overpayment_idr": result.OverpaymentIDR,
	})
}

// ❌ POST /api/a/payments/:id/reject — tolak dengan alasan.
// Nominalnya tetap tercatat outstanding sampai resolved.
func (ctrl *PaymentAdminController) RejectPayment(c *fiber.Ctx) error {
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var (
		payment *model.PaymentModel
		notif   *service.Notification
	)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		payment, notif, txErr = ctrl.lifecycle(tx).Reject(c.Context(), paymentID, req.PaymentRejectReason)
		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, service.ErrPaymentNotPending):
			return helper.JsonError(c, fiber.StatusConflict, "Pembayaran sudah diproses")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menolak pembayaran")
		}
	}

	notif.EmitTo(ctrl.Notify)

	return helper.JsonUpdated(c, "Pembayaran ditolak", dto.ToPaymentResponse(*payment))
}

// 🗑️ DELETE /api/a/payments/:id — reversal pembayaran approved.
// Watermark otomatis mundur ke approve sebelumnya dan tagihan yang
// tadinya tertutup kembali outstanding.
func (ctrl *PaymentAdminController) DeleteApprovedPayment(c *fiber.Ctx) error {
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	var (
		newWatermark *time.Time
		notif        *service.Notification
	)
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		newWatermark, notif, txErr = ctrl.lifecycle(tx).DeleteApproved(c.Context(), paymentID)
		return txErr
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, service.ErrPaymentNotApproved):
			return helper.JsonError(c, fiber.StatusConflict, "Hanya pembayaran approved yang bisa dibatalkan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membatalkan pembayaran")
		}
	}

	notif.EmitTo(ctrl.Notify)

	return helper.JsonDeleted(c, "Pembayaran dibatalkan", fiber.Map{
		"payment_id":       paymentID,
		"new_paid_through": newWatermark,
	})
}

// ✔️ PATCH /api/a/payments/:id/resolve — tandai nominal rejected selesai
// secara manual (mis. sudah dibereskan di luar sistem)
func (ctrl *PaymentAdminController) ResolveRejectedPayment(c *fiber.Ctx) error {
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ? AND payment_resolved_at IS NULL",
			paymentID, model.PaymentStatusRejected).
		Update("payment_resolved_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyelesaikan pembayaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran rejected yang belum selesai tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Pembayaran rejected ditandai selesai", fiber.Map{
		"payment_id":          paymentID,
		"payment_resolved_at": now,
	})
}

// 📊 GET /api/a/clients/:client_id/summary — neraca client (sisi admin)
func (ctrl *PaymentAdminController) GetClientSummary(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	summary, err := ctrl.lifecycle(ctrl.DB).Summary(c.Context(), clientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	return helper.JsonOK(c, "Ringkasan tagihan client", summary)
}
