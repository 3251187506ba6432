package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyDueModel: satu baris per (client, tanggal) dengan aktivitas billable.
// Nilainya hasil recompute penuh, bukan patch inkremental — selalu bisa
// direproduksi dari meetings + tarif.
type DailyDueModel struct {
	// PK
	DailyDueID uuid.UUID `json:"daily_due_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:daily_due_id"`

	DailyDueClientID uuid.UUID `json:"daily_due_client_id" gorm:"type:uuid;not null;column:daily_due_client_id;uniqueIndex:uq_daily_dues_client_date"`
	DailyDueDate     time.Time `json:"daily_due_date" gorm:"type:date;not null;column:daily_due_date;uniqueIndex:uq_daily_dues_client_date"`

	// amount = gross − advance + manual; tidak boleh negatif
	DailyDueGrossAmountIDR   int `json:"daily_due_gross_amount_idr" gorm:"not null;check:daily_due_gross_amount_idr >= 0;column:daily_due_gross_amount_idr"`
	DailyDueAdvanceAmountIDR int `json:"daily_due_advance_amount_idr" gorm:"not null;default:0;check:daily_due_advance_amount_idr >= 0;column:daily_due_advance_amount_idr"`
	DailyDueManualAmountIDR  int `json:"daily_due_manual_amount_idr" gorm:"not null;default:0;column:daily_due_manual_amount_idr"`
	DailyDueAmountIDR        int `json:"daily_due_amount_idr" gorm:"not null;check:daily_due_amount_idr >= 0;column:daily_due_amount_idr"`

	DailyDueMeetingCount int `json:"daily_due_meeting_count" gorm:"not null;default:0;column:daily_due_meeting_count"`

	// Timestamps
	DailyDueCreatedAt time.Time      `json:"daily_due_created_at" gorm:"autoCreateTime;column:daily_due_created_at"`
	DailyDueUpdatedAt *time.Time     `json:"daily_due_updated_at,omitempty" gorm:"autoUpdateTime;column:daily_due_updated_at"`
	DailyDueDeletedAt gorm.DeletedAt `json:"daily_due_deleted_at,omitempty" gorm:"index;column:daily_due_deleted_at"`
}

func (DailyDueModel) TableName() string { return "daily_dues" }
