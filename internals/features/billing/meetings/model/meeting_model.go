package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum kecil biar aman saat dipakai di code
type MeetingCategory string

const (
	MeetingCategoryDomestic MeetingCategory = "domestic"
	MeetingCategoryForeign  MeetingCategory = "foreign"
	MeetingCategoryPremium  MeetingCategory = "premium"
)

type MeetingStatus string

const (
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusNotLive   MeetingStatus = "not_live"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

type MeetingModel struct {
	// PK
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meeting_id"`

	// FK ke clients (NOT NULL)
	MeetingClientID uuid.UUID `json:"meeting_client_id" gorm:"type:uuid;not null;column:meeting_client_id;index:idx_meetings_client_date"`

	// Tanggal kalender tagihan (date, tanpa jam)
	MeetingDate time.Time `json:"meeting_date" gorm:"type:date;not null;column:meeting_date;index:idx_meetings_client_date"`

	MeetingMemberCount int             `json:"meeting_member_count" gorm:"not null;check:meeting_member_count >= 0;column:meeting_member_count"`
	MeetingCategory    MeetingCategory `json:"meeting_category" gorm:"type:varchar(20);not null;default:domestic;column:meeting_category"`

	// Bukti kehadiran: URL opaque, isi file bukan urusan core
	MeetingProofURL *string       `json:"meeting_proof_url,omitempty" gorm:"type:text;column:meeting_proof_url"`
	MeetingStatus   MeetingStatus `json:"meeting_status" gorm:"type:varchar(20);not null;default:active;column:meeting_status"`

	MeetingTitle string  `json:"meeting_title" gorm:"type:varchar(160);not null;column:meeting_title"`
	MeetingNote  *string `json:"meeting_note,omitempty" gorm:"type:text;column:meeting_note"`

	// Timestamps
	MeetingCreatedAt time.Time      `json:"meeting_created_at" gorm:"autoCreateTime;column:meeting_created_at"`
	MeetingUpdatedAt *time.Time     `json:"meeting_updated_at,omitempty" gorm:"autoUpdateTime;column:meeting_updated_at"`
	MeetingDeletedAt gorm.DeletedAt `json:"meeting_deleted_at,omitempty" gorm:"index;column:meeting_deleted_at"`
}

func (MeetingModel) TableName() string { return "meetings" }

// Billable: ikut tagihan harian hanya kalau ada bukti kehadiran
// dan status bukan not_live.
func (m *MeetingModel) Billable() bool {
	return m.MeetingProofURL != nil && *m.MeetingProofURL != "" && m.MeetingStatus != MeetingStatusNotLive
}
