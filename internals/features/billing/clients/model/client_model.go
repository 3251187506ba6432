package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientModel struct {
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;default:gen_random_uuid();primaryKey" json:"client_id"`

	// FK ke users.id (akun login pemilik client, nullable → SET NULL)
	ClientUserID *uuid.UUID `gorm:"column:client_user_id;type:uuid;index" json:"client_user_id,omitempty"`

	ClientName string `gorm:"column:client_name;type:varchar(120);not null" json:"client_name"`

	// Tarif per peserta (IDR). Foreign fallback ke domestic, premium fallback
	// ke default sistem kalau override kosong.
	ClientRateDomesticIDR int  `gorm:"column:client_rate_domestic_idr;not null;check:client_rate_domestic_idr >= 0" json:"client_rate_domestic_idr"`
	ClientRateForeignIDR  *int `gorm:"column:client_rate_foreign_idr;check:client_rate_foreign_idr >= 0" json:"client_rate_foreign_idr,omitempty"`
	ClientRatePremiumIDR  *int `gorm:"column:client_rate_premium_idr;check:client_rate_premium_idr >= 0" json:"client_rate_premium_idr,omitempty"`

	ClientIsActive bool    `gorm:"column:client_is_active;not null;default:true" json:"client_is_active"`
	ClientNote     *string `gorm:"column:client_note;type:text" json:"client_note,omitempty"`

	// Timestamps
	ClientCreatedAt time.Time      `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	ClientUpdatedAt *time.Time     `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at,omitempty"`
	ClientDeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;index" json:"client_deleted_at,omitempty"`
}

func (ClientModel) TableName() string { return "clients" }
