package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/meetings/dto"
	"rapatku_backend/internals/features/billing/meetings/model"
	duesService "rapatku_backend/internals/features/billing/dues/service"
	helper "rapatku_backend/internals/helpers"
	"rapatku_backend/internals/helpers/dbtime"
)

// MeetingController: CRUD meeting milik client. Setiap mutasi yang
// mengubah komposisi tagihan harian langsung memicu hitung ulang hari
// tersebut (recompute-on-write), jadi daily dues selalu konsisten dengan
// meeting yang tercatat.
type MeetingController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Recomputer *duesService.Recomputer
}

func NewMeetingController(db *gorm.DB, recomputer *duesService.Recomputer) *MeetingController {
	return &MeetingController{DB: db, Validate: validator.New(), Recomputer: recomputer}
}

func (ctrl *MeetingController) recomputeDay(c *fiber.Ctx, clientID uuid.UUID, date time.Time) {
	if _, err := ctrl.Recomputer.RecomputeDay(c.Context(), clientID, date); err != nil {
		// Meeting sudah tersimpan; tagihan menyusul lewat recompute admin.
		log.Printf("[ERROR] Recompute %s %s gagal: %v", clientID, dbtime.DateOnly(date).Format("2006-01-02"), err)
	}
}

// ➕ POST /api/u/meetings — catat meeting selesai
func (ctrl *MeetingController) CreateMeeting(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := dbtime.ParseDate(req.MeetingDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (pakai YYYY-MM-DD)")
	}

	category := model.MeetingCategoryDomestic
	if req.MeetingCategory != "" {
		category = model.MeetingCategory(req.MeetingCategory)
	}

	meeting := model.MeetingModel{
		MeetingClientID:    clientID,
		MeetingDate:        dbtime.DateOnly(date),
		MeetingTitle:       req.MeetingTitle,
		MeetingMemberCount: req.MeetingMemberCount,
		MeetingCategory:    category,
		MeetingProofURL:    req.MeetingProofURL,
		MeetingStatus:      model.MeetingStatusActive,
		MeetingNote:        req.MeetingNote,
	}
	if err := ctrl.DB.Create(&meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan meeting")
	}

	ctrl.recomputeDay(c, clientID, meeting.MeetingDate)

	return helper.JsonCreated(c, "Meeting berhasil dicatat", dto.ToMeetingResponse(meeting))
}

// 📄 GET /api/u/meetings — daftar meeting milik client (filter ?from=&to=)
func (ctrl *MeetingController) ListMyMeetings(c *fiber.Ctx) error {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.listMeetings(c, clientID)
}

// 📄 GET /api/a/clients/:client_id/meetings — daftar meeting sebuah client
func (ctrl *MeetingController) ListClientMeetings(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID client tidak valid")
	}
	return ctrl.listMeetings(c, clientID)
}

func (ctrl *MeetingController) listMeetings(c *fiber.Ctx, clientID uuid.UUID) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MeetingModel{}).Where("meeting_client_id = ?", clientID)
	if from := c.Query("from"); from != "" {
		if d, err := dbtime.ParseDate(from); err == nil {
			q = q.Where("meeting_date >= ?", dbtime.DateOnly(d))
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := dbtime.ParseDate(to); err == nil {
			q = q.Where("meeting_date <= ?", dbtime.DateOnly(d))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung meeting")
	}

	var meetings []model.MeetingModel
	if err := q.Order("meeting_date DESC, meeting_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&meetings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar meeting")
	}

	resp := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		resp = append(resp, dto.ToMeetingResponse(m))
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar meeting", resp, &pg)
}

func (ctrl *MeetingController) findOwnedMeeting(c *fiber.Ctx) (*model.MeetingModel, uuid.UUID, error) {
	clientID, err := helper.GetClientIDFromToken(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "ID meeting tidak valid")
	}

	var meeting model.MeetingModel
	if err := ctrl.DB.First(&meeting, "meeting_id = ? AND meeting_client_id = ?", id, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, helper.JsonError(c, fiber.StatusNotFound, "Meeting tidak ditemukan")
		}
		return nil, uuid.Nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil meeting")
	}
	return &meeting, clientID, nil
}

// ✏️ PUT /api/u/meetings/:id — koreksi meeting, lalu hitung ulang harinya
func (ctrl *MeetingController) UpdateMeeting(c *fiber.Ctx) error {
	meeting, clientID, err := ctrl.findOwnedMeeting(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyTo(meeting)
	if err := ctrl.DB.Save(meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui meeting")
	}

	ctrl.recomputeDay(c, clientID, meeting.MeetingDate)

	return helper.JsonUpdated(c, "Meeting berhasil diperbarui", dto.ToMeetingResponse(*meeting))
}

// 📎 PATCH /api/u/meetings/:id/proof — lampirkan bukti meeting.
// Tanpa bukti, meeting belum ikut dihitung sebagai tagihan.
func (ctrl *MeetingController) AttachProof(c *fiber.Ctx) error {
	meeting, clientID, err := ctrl.findOwnedMeeting(c)
	if err != nil {
		return err
	}

	var req dto.AttachProofRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	meeting.MeetingProofURL = &req.MeetingProofURL
	if err := ctrl.DB.Save(meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti meeting")
	}

	ctrl.recomputeDay(c, clientID, meeting.MeetingDate)

	return helper.JsonUpdated(c, "Bukti meeting berhasil dilampirkan", dto.ToMeetingResponse(*meeting))
}

// 🗑️ DELETE /api/u/meetings/:id — hapus meeting, tagihan harinya menyusut
func (ctrl *MeetingController) DeleteMeeting(c *fiber.Ctx) error {
	meeting, clientID, err := ctrl.findOwnedMeeting(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Delete(meeting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus meeting")
	}

	ctrl.recomputeDay(c, clientID, meeting.MeetingDate)

	return helper.JsonDeleted(c, "Meeting berhasil dihapus", fiber.Map{"meeting_id": meeting.MeetingID})
}
