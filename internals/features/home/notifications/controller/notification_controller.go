package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/home/notifications/dto"
	"rapatku_backend/internals/features/home/notifications/model"
	helper "rapatku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications — notifikasi milik user + broadcast (user_id NULL)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? OR notification_user_id IS NULL", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var notifs []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil notifikasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar notifikasi", dto.ToNotificationResponseList(notifs), &pg)
}

// 🟢 PATCH /api/u/notifications/:id/read — tandai sudah dibaca
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND (notification_user_id = ? OR notification_user_id IS NULL) AND notification_read_at IS NULL",
			id, userID).
		Update("notification_read_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan atau sudah dibaca")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", fiber.Map{
		"notification_id":      id,
		"notification_read_at": now,
	})
}
