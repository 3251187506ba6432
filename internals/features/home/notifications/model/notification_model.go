package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tipe notifikasi (enum di sisi kode)
const (
	NotificationTypeInfo            = 1
	NotificationTypePaymentApproved = 2
	NotificationTypePaymentRejected = 3
	NotificationTypePaymentReversed = 4
)

type NotificationModel struct {
	NotificationID          uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID      *uuid.UUID     `gorm:"column:notification_user_id;type:uuid;index" json:"notification_user_id,omitempty"` // nullable → broadcast
	NotificationTitle       string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationDescription string         `gorm:"column:notification_description;type:text" json:"notification_description"`
	NotificationType        int            `gorm:"column:notification_type;not null" json:"notification_type"`
	NotificationTags        pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationReadAt      *time.Time     `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`
	NotificationCreatedAt   time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt   time.Time      `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
