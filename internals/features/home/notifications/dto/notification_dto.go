package dto

import (
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/home/notifications/model"
)

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID          uuid.UUID  `json:"notification_id"`
	NotificationTitle       string     `json:"notification_title"`
	NotificationDescription string     `json:"notification_description"`
	NotificationType        int        `json:"notification_type"`
	NotificationTags        []string   `json:"notification_tags"`
	NotificationReadAt      *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt   string     `json:"notification_created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:          m.NotificationID,
		NotificationTitle:       m.NotificationTitle,
		NotificationDescription: m.NotificationDescription,
		NotificationType:        m.NotificationType,
		NotificationTags:        m.NotificationTags,
		NotificationReadAt:      m.NotificationReadAt,
		NotificationCreatedAt:   m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	var result []NotificationResponse
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}
