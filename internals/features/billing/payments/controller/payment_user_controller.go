package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/configs"
	clientModel "rapatku_backend/internals/features/billing/clients/model"
	"rapatku_backend/internals/features/billing/payments/dto"
	"rapatku_backend/internals/features/billing/payments/model"
	"rapatku_backend/internals/features/billing/payments/service"
	helper "rapatku_backend/internals/helpers"
	"rapatku_backend/internals/helpers/dbtime"
)

// PaymentUserController: sisi client — ajukan pembayaran, lihat riwayat,
// tarik submission pending, dan checkout online.
type PaymentUserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentUserController(db *gorm.DB) *PaymentUserController {
	return &PaymentUserController{DB: db, Validate: validator.New()}
}

func (ctrl *PaymentUserController) lifecycle(tx *gorm.DB) *service.Lifecycle {
	stores := service.NewGormStores(tx)
	return service.NewLifecycle(stores, stores, stores)
}

// ➕ POST /api/u/payments — ajukan pembayaran.
// Nominal upto_date & settle_all dihitung server dari tagihan berjalan;
// hanya kind custom yang menerima nominal bebas.
func (ctrl *PaymentUserController) SubmitPayment(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lc := ctrl.lifecycle(ctrl.DB)
	payment := model.PaymentModel{
		PaymentClientID: clientID,
		PaymentKind:     req.PaymentKind,
		PaymentStatus:   model.PaymentStatusPending,
		PaymentProofURL: req.PaymentProofURL,
		PaymentNote:     req.PaymentNote,
	}
	if userID, err := helper.GetUserIDFromToken(c); err == nil && userID != uuid.Nil {
		payment.PaymentUserID = &userID
	}

	switch req.PaymentKind {
	case model.PaymentKindUptoDate:
		if req.PaymentIntentDate == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "payment_intent_date wajib untuk kind upto_date")
		}
		intent, err := dbtime.ParseDate(*req.PaymentIntentDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (pakai YYYY-MM-DD)")
		}
		intent = dbtime.DateOnly(intent)

		watermark, err := lc.Payments.LastApprovedPaidThrough(c.Context(), clientID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca riwayat pembayaran")
		}
		dues, err := lc.Dues.ListUnsettledAfter(c.Context(), clientID, watermark)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca tagihan")
		}
		amount := service.SumThrough(dues, intent)
		if amount <= 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tidak ada tagihan sampai tanggal itu")
		}
		payment.PaymentAmountIDR = amount
		payment.PaymentIntentDate = &intent

	case model.PaymentKindSettleAll:
		hour, minute := configs.SettlementCutoff()
		amount, cutoff, err := lc.QuoteSettleAll(c.Context(), clientID, time.Now().In(dbtime.AppLocation()), hour, minute)
		if err != nil {
			if errors.Is(err, service.ErrNothingToSettle) {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tidak ada tagihan yang perlu dilunasi")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nominal pelunasan")
		}
		payment.PaymentAmountIDR = amount
		payment.PaymentIntentDate = &cutoff

	case model.PaymentKindCustom:
		if req.PaymentAmountIDR <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "payment_amount_idr wajib untuk kind custom")
		}
		payment.PaymentAmountIDR = req.PaymentAmountIDR
	}

	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran diajukan, menunggu persetujuan admin", dto.ToPaymentResponse(payment))
}

// 💰 GET /api/u/payments/settle-all/quote — pratinjau nominal "lunasi semua"
func (ctrl *PaymentUserController) QuoteSettleAll(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	hour, minute := configs.SettlementCutoff()
	lc := ctrl.lifecycle(ctrl.DB)
	amount, cutoff, err := lc.QuoteSettleAll(c.Context(), clientID, time.Now().In(dbtime.AppLocation()), hour, minute)
	if err != nil {
		if errors.Is(err, service.ErrNothingToSettle) {
			return helper.JsonOK(c, "Tidak ada tagihan yang perlu dilunasi", dto.SettleAllQuoteResponse{
				AmountIDR: 0, CutoffDate: cutoff,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nominal pelunasan")
	}

	return helper.JsonOK(c, "Nominal pelunasan", dto.SettleAllQuoteResponse{AmountIDR: amount, CutoffDate: cutoff})
}

// 📄 GET /api/u/payments — riwayat pembayaran milik client
func (ctrl *PaymentUserController) ListMyPayments(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PaymentModel{}).Where("payment_client_id = ?", clientID)
	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	var payments []model.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat pembayaran")
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, m := range payments {
		resp = append(resp, dto.ToPaymentResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Riwayat pembayaran", resp, &pg)
}

// 📊 GET /api/u/summary — neraca client: lunas sampai kapan, outstanding,
// nominal rejected yang belum selesai, sisa advance
func (ctrl *PaymentUserController) GetMySummary(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	summary, err := ctrl.lifecycle(ctrl.DB).Summary(c.Context(), clientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	return helper.JsonOK(c, "Ringkasan tagihan", summary)
}

// 🗑️ DELETE /api/u/payments/:id — tarik submission yang masih pending
func (ctrl *PaymentUserController) DeletePendingPayment(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return ctrl.lifecycle(tx).DeletePending(c.Context(), paymentID, clientID)
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, service.ErrPaymentNotOwned):
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, service.ErrPaymentNotPending):
			return helper.JsonError(c, fiber.StatusConflict, "Pembayaran sudah diproses, tidak bisa ditarik")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menarik pembayaran")
		}
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil ditarik", fiber.Map{"payment_id": paymentID})
}

// 💳 POST /api/u/payments/:id/checkout — buat sesi checkout Midtrans
func (ctrl *PaymentUserController) Checkout(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	paymentID, err := parsePaymentID(c)
	if err != nil {
		return err
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_id = ? AND payment_client_id = ?", paymentID, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}
	if !payment.IsPending() {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya pembayaran pending yang bisa checkout")
	}

	var client clientModel.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", clientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data client")
	}

	token, redirectURL, err := service.GenerateSnapToken(&payment, client.ClientName)
	if err != nil {
		if errors.Is(err, service.ErrGatewayDisabled) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Checkout online sedang nonaktif")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat sesi pembayaran")
	}

	orderID := payment.PaymentID.String()
	payment.PaymentExternalID = &orderID
	payment.PaymentCheckoutURL = &redirectURL
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi checkout")
	}

	return helper.JsonOK(c, "Sesi checkout dibuat", dto.CheckoutResponse{
		PaymentID:   payment.PaymentID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}
