package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/clients/dto"
	"rapatku_backend/internals/features/billing/clients/model"
	helper "rapatku_backend/internals/helpers"
)

type ClientController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db, Validate: validator.New()}
}

// ➕ POST /api/a/clients — daftarkan client baru (admin)
func (ctrl *ClientController) CreateClient(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	client := dto.ToClientModel(req)
	if err := ctrl.DB.Create(&client).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan client")
	}

	return helper.JsonCreated(c, "Client berhasil dibuat", dto.ToClientResponse(client))
}

// 📄 GET /api/a/clients — daftar client (admin, paging + pencarian nama)
func (ctrl *ClientController) ListClients(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClientModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("client_name ILIKE ?", "%"+search+"%")
	}
	if c.Query("active") == "true" {
		q = q.Where("client_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung client")
	}

	var clients []model.ClientModel
	if err := q.Order("client_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&clients).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar client")
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, m := range clients {
		resp = append(resp, dto.ToClientResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar client", resp, &pg)
}

// 🔍 GET /api/a/clients/:id
func (ctrl *ClientController) GetClientByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	var client model.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client")
	}

	return helper.JsonOK(c, "Detail client", dto.ToClientResponse(client))
}

// ✏️ PUT /api/a/clients/:id — update data & rate.
// Rate baru hanya dipakai perhitungan berikutnya; dues lama tidak berubah.
func (ctrl *ClientController) UpdateClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var client model.ClientModel
	if err := ctrl.DB.First(&client, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil client")
	}

	req.ApplyTo(&client)
	if err := ctrl.DB.Save(&client).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui client")
	}

	return helper.JsonUpdated(c, "Client berhasil diperbarui", dto.ToClientResponse(client))
}

// 🗑️ DELETE /api/a/clients/:id — soft delete (riwayat tagihan tetap utuh)
func (ctrl *ClientController) DeleteClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}

	res := ctrl.DB.Delete(&model.ClientModel{}, "client_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus client")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Client berhasil dihapus", fiber.Map{"client_id": id})
}
