package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/advances/dto"
	"rapatku_backend/internals/features/billing/advances/model"
	advanceService "rapatku_backend/internals/features/billing/advances/service"
	clientModel "rapatku_backend/internals/features/billing/clients/model"
	helper "rapatku_backend/internals/helpers"
)

// AdvanceController: kelola saldo advance (prepaid) per client. Saldo
// dikonsumsi otomatis oldest-first saat hitung tagihan harian; di sini
// hanya setor, lihat, dan nonaktifkan.
type AdvanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdvanceController(db *gorm.DB) *AdvanceController {
	return &AdvanceController{DB: db, Validate: validator.New()}
}

// ➕ POST /api/a/advances — setor saldo advance (admin)
func (ctrl *AdvanceController) CreateAdvance(c *fiber.Ctx) error {
	var req dto.CreateAdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pastikan client-nya ada dan aktif
	var client clientModel.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", req.AdvanceBalanceClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client")
	}

	members := 0
	if client.ClientRateDomesticIDR > 0 {
		members = req.AdvanceBalanceRemainingIDR / client.ClientRateDomesticIDR
	}

	advance := model.AdvanceBalanceModel{
		AdvanceBalanceClientID:         req.AdvanceBalanceClientID,
		AdvanceBalanceRemainingIDR:     req.AdvanceBalanceRemainingIDR,
		AdvanceBalanceRemainingMembers: members,
		AdvanceBalanceIsActive:         true,
		AdvanceBalanceNote:             req.AdvanceBalanceNote,
	}
	if err := ctrl.DB.Create(&advance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan saldo advance")
	}

	return helper.JsonCreated(c, "Saldo advance berhasil disetor", dto.ToAdvanceBalanceResponse(advance))
}

// 📄 GET /api/a/clients/:client_id/advances — daftar saldo + total sisa
func (ctrl *AdvanceController) ListClientAdvances(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	var advances []model.AdvanceBalanceModel
	if err := ctrl.DB.
		Where("advance_balance_client_id = ?", clientID).
		Order("advance_balance_created_at ASC").
		Find(&advances).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil saldo advance")
	}

	remaining, err := advanceService.RemainingTotal(ctrl.DB, clientID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sisa saldo")
	}

	resp := make([]dto.AdvanceBalanceResponse, 0, len(advances))
	for _, m := range advances {
		resp = append(resp, dto.ToAdvanceBalanceResponse(m))
	}

	return helper.JsonOK(c, "Daftar saldo advance", fiber.Map{
		"advances":            resp,
		"total_remaining_idr": remaining,
	})
}

// 🚫 PATCH /api/a/advances/:id/deactivate — sisa saldo tidak dipakai lagi
func (ctrl *AdvanceController) DeactivateAdvance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID advance tidak valid")
	}

	res := ctrl.DB.Model(&model.AdvanceBalanceModel{}).
		Where("advance_balance_id = ? AND advance_balance_is_active = TRUE", id).
		Update("advance_balance_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan saldo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Saldo advance aktif tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Saldo advance dinonaktifkan", fiber.Map{"advance_balance_id": id})
}

// 📄 GET /api/a/clients/:client_id/advances/consumptions — ledger konsumsi
// harian (audit trail potongan advance per tanggal)
func (ctrl *AdvanceController) ListClientConsumptions(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}
	paging := helper.ResolvePaging(c, 31, 100)

	q := ctrl.DB.Model(&model.AdvanceConsumptionModel{}).
		Where("advance_consumption_client_id = ?", clientID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ledger")
	}

	var rows []model.AdvanceConsumptionModel
	if err := q.Order("advance_consumption_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ledger konsumsi")
	}

	resp := make([]dto.AdvanceConsumptionResponse, 0, len(rows))
	for _, m := range rows {
		resp = append(resp, dto.ToAdvanceConsumptionResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Ledger konsumsi advance", resp, &pg)
}
