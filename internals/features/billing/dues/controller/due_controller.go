package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientService "rapatku_backend/internals/features/billing/clients/service"
	"rapatku_backend/internals/features/billing/dues/dto"
	"rapatku_backend/internals/features/billing/dues/model"
	duesService "rapatku_backend/internals/features/billing/dues/service"
	paymentModel "rapatku_backend/internals/features/billing/payments/model"
	helper "rapatku_backend/internals/helpers"
	"rapatku_backend/internals/helpers/dbtime"
)

type DueController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Recomputer *duesService.Recomputer
}

func NewDueController(db *gorm.DB, recomputer *duesService.Recomputer) *DueController {
	return &DueController{DB: db, Validate: validator.New(), Recomputer: recomputer}
}

func (ctrl *DueController) listDues(c *fiber.Ctx, clientID uuid.UUID) error {
	paging := helper.ResolvePaging(c, 31, 100)

	q := ctrl.DB.Model(&model.DailyDueModel{}).Where("daily_due_client_id = ?", clientID)
	if c.Query("outstanding") == "true" {
		// Hanya tagihan setelah watermark (paid_through approval terakhir).
		if wm, err := ctrl.watermark(clientID); err == nil && wm != nil {
			q = q.Where("daily_due_date > ?", *wm)
		}
	}
	if from := c.Query("from"); from != "" {
		if d, err := dbtime.ParseDate(from); err == nil {
			q = q.Where("daily_due_date >= ?", dbtime.DateOnly(d))
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := dbtime.ParseDate(to); err == nil {
			q = q.Where("daily_due_date <= ?", dbtime.DateOnly(d))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tagihan")
	}

	var dues []model.DailyDueModel
	if err := q.Order("daily_due_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&dues).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	resp := make([]dto.DailyDueResponse, 0, len(dues))
	for _, m := range dues {
		resp = append(resp, dto.ToDailyDueResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar tagihan harian", resp, &pg)
}

func (ctrl *DueController) watermark(clientID uuid.UUID) (*time.Time, error) {
	var p paymentModel.PaymentModel
	err := ctrl.DB.
		Where("payment_client_id = ? AND payment_status = ?", clientID, paymentModel.PaymentStatusApproved).
		Order("payment_approved_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p.PaymentPaidThrough, nil
}

// 📄 GET /api/u/dues — tagihan harian milik client (filter ?outstanding=true&from=&to=)
func (ctrl *DueController) ListMyDues(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.listDues(c, clientID)
}

// 📄 GET /api/a/clients/:client_id/dues — tagihan harian client tertentu (admin)
func (ctrl *DueController) ListClientDues(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}
	return ctrl.listDues(c, clientID)
}

// ✏️ PUT /api/a/clients/:client_id/dues/adjustment — koreksi manual admin.
// Penambahan di hari kosong membuat baris tagihan baru; pengurangan
// yang membuat total negatif ditolak.
func (ctrl *DueController) SetManualAdjustment(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	var req dto.SetManualAdjustmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := dbtime.ParseDate(req.DailyDueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (pakai YYYY-MM-DD)")
	}

	due, err := ctrl.Recomputer.SetManualAdjustment(c.Context(), clientID, date, req.DailyDueManualAmountIDR)
	if err != nil {
		switch {
		case errors.Is(err, duesService.ErrManualAdjustmentInvalid), errors.Is(err, duesService.ErrNegativeDue):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Koreksi membuat tagihan harian negatif")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan koreksi")
		}
	}
	if due == nil {
		return helper.JsonUpdated(c, "Koreksi tersimpan; hari ini tidak ada tagihan", nil)
	}

	return helper.JsonUpdated(c, "Koreksi tagihan tersimpan", dto.ToDailyDueResponse(*due))
}

// 🔁 POST /api/a/clients/:client_id/dues/recompute — hitung ulang rentang
// tanggal. Idempoten: hasil akhirnya selalu sama dengan hitung dari nol.
func (ctrl *DueController) RecomputeRange(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	var req dto.RecomputeRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	from, err := dbtime.ParseDate(req.DateFrom)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_from tidak valid")
	}
	to, err := dbtime.ParseDate(req.DateTo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to tidak valid")
	}
	from, to = dbtime.DateOnly(from), dbtime.DateOnly(to)
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus >= date_from")
	}
	if to.Sub(from) > 366*24*time.Hour {
		return helper.JsonError(c, fiber.StatusBadRequest, "Rentang maksimal satu tahun")
	}

	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if _, err := ctrl.Recomputer.RecomputeDay(c.Context(), clientID, d); err != nil {
			if errors.Is(err, clientService.ErrClientNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError,
				"Gagal hitung ulang tanggal "+d.Format("2006-01-02"))
		}
		days++
	}

	return helper.JsonOK(c, "Hitung ulang selesai", fiber.Map{
		"client_id": clientID,
		"date_from": from,
		"date_to":   to,
		"days":      days,
	})
}
