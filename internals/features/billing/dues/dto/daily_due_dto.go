package dto

import (
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/dues/model"
)

// SetManualAdjustmentRequest: koreksi admin per (client, tanggal).
// Nilai boleh negatif (diskon) selama total harian tidak jadi negatif.
type SetManualAdjustmentRequest struct {
	DailyDueDate            string `json:"daily_due_date" validate:"required"` // "2006-01-02"
	DailyDueManualAmountIDR int    `json:"daily_due_manual_amount_idr"`
}

// RecomputeRangeRequest: hitung ulang rentang tanggal (inklusif)
type RecomputeRangeRequest struct {
	DateFrom string `json:"date_from" validate:"required"`
	DateTo   string `json:"date_to" validate:"required"`
}

type DailyDueResponse struct {
	DailyDueID       uuid.UUID `json:"daily_due_id"`
	DailyDueClientID uuid.UUID `json:"daily_due_client_id"`
	DailyDueDate     time.Time `json:"daily_due_date"`

	DailyDueGrossAmountIDR   int `json:"daily_due_gross_amount_idr"`
	DailyDueAdvanceAmountIDR int `json:"daily_due_advance_amount_idr"`
	DailyDueManualAmountIDR  int `json:"daily_due_manual_amount_idr"`
	DailyDueAmountIDR        int `json:"daily_due_amount_idr"`

	DailyDueMeetingCount int `json:"daily_due_meeting_count"`

	DailyDueCreatedAt time.Time  `json:"daily_due_created_at"`
	DailyDueUpdatedAt *time.Time `json:"daily_due_updated_at,omitempty"`
}

func ToDailyDueResponse(m model.DailyDueModel) DailyDueResponse {
	return DailyDueResponse{
		DailyDueID:               m.DailyDueID,
		DailyDueClientID:         m.DailyDueClientID,
		DailyDueDate:             m.DailyDueDate,
		DailyDueGrossAmountIDR:   m.DailyDueGrossAmountIDR,
		DailyDueAdvanceAmountIDR: m.DailyDueAdvanceAmountIDR,
		DailyDueManualAmountIDR:  m.DailyDueManualAmountIDR,
		DailyDueAmountIDR:        m.DailyDueAmountIDR,
		DailyDueMeetingCount:     m.DailyDueMeetingCount,
		DailyDueCreatedAt:        m.DailyDueCreatedAt,
		DailyDueUpdatedAt:        m.DailyDueUpdatedAt,
	}
}
