package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdvanceBalanceModel: saldo deposit client. Boleh lebih dari satu baris per
// client; yang aktif dijumlahkan. Saldo hanya turun lewat agregasi tagihan
// harian (lihat AdvanceConsumptionModel), tidak pernah lewat settlement.
type AdvanceBalanceModel struct {
	AdvanceBalanceID uuid.UUID `json:"advance_balance_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advance_balance_id"`

	AdvanceBalanceClientID uuid.UUID `json:"advance_balance_client_id" gorm:"type:uuid;not null;column:advance_balance_client_id;index:idx_advance_balances_client"`

	AdvanceBalanceRemainingIDR     int `json:"advance_balance_remaining_idr" gorm:"not null;check:advance_balance_remaining_idr >= 0;column:advance_balance_remaining_idr"`
	AdvanceBalanceRemainingMembers int `json:"advance_balance_remaining_members" gorm:"not null;default:0;check:advance_balance_remaining_members >= 0;column:advance_balance_remaining_members"`

	AdvanceBalanceIsActive bool    `json:"advance_balance_is_active" gorm:"not null;default:true;column:advance_balance_is_active"`
	AdvanceBalanceNote     *string `json:"advance_balance_note,omitempty" gorm:"type:text;column:advance_balance_note"`

	AdvanceBalanceCreatedAt time.Time      `json:"advance_balance_created_at" gorm:"autoCreateTime;column:advance_balance_created_at"`
	AdvanceBalanceUpdatedAt *time.Time     `json:"advance_balance_updated_at,omitempty" gorm:"autoUpdateTime;column:advance_balance_updated_at"`
	AdvanceBalanceDeletedAt gorm.DeletedAt `json:"advance_balance_deleted_at,omitempty" gorm:"index;column:advance_balance_deleted_at"`
}

func (AdvanceBalanceModel) TableName() string { return "advance_balances" }
