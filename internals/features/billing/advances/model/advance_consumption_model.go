package model

import (
	"time"

	"github.com/google/uuid"
)

// AdvanceConsumptionModel: ledger pemakaian deposit, satu baris per
// (client, tanggal). Unique index-nya yang menjamin idempotensi — recompute
// ulang untuk tanggal yang sama tidak bisa double-consume.
type AdvanceConsumptionModel struct {
	AdvanceConsumptionID uuid.UUID `json:"advance_consumption_id" gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:advance_consumption_id"`

	AdvanceConsumptionClientID uuid.UUID `json:"advance_consumption_client_id" gorm:"type:uuid;not null;column:advance_consumption_client_id;uniqueIndex:uq_advance_consumptions_client_date"`
	AdvanceConsumptionDate     time.Time `json:"advance_consumption_date" gorm:"type:date;not null;column:advance_consumption_date;uniqueIndex:uq_advance_consumptions_client_date"`

	AdvanceConsumptionAmountIDR int `json:"advance_consumption_amount_idr" gorm:"not null;check:advance_consumption_amount_idr >= 0;column:advance_consumption_amount_idr"`
	AdvanceConsumptionMembers   int `json:"advance_consumption_members" gorm:"not null;default:0;column:advance_consumption_members"`

	AdvanceConsumptionCreatedAt time.Time `json:"advance_consumption_created_at" gorm:"autoCreateTime;column:advance_consumption_created_at"`
}

func (AdvanceConsumptionModel) TableName() string { return "advance_consumptions" }
