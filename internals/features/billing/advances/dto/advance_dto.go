package dto

import (
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/advances/model"
)

// CreateAdvanceRequest: setor saldo advance (prepaid) untuk satu client
type CreateAdvanceRequest struct {
	AdvanceBalanceClientID     uuid.UUID `json:"advance_balance_client_id" validate:"required"`
	AdvanceBalanceRemainingIDR int       `json:"advance_balance_remaining_idr" validate:"required,gt=0"`
	AdvanceBalanceNote         *string   `json:"advance_balance_note,omitempty"`
}

type AdvanceBalanceResponse struct {
	AdvanceBalanceID       uuid.UUID `json:"advance_balance_id"`
	AdvanceBalanceClientID uuid.UUID `json:"advance_balance_client_id"`

	AdvanceBalanceRemainingIDR     int `json:"advance_balance_remaining_idr"`
	AdvanceBalanceRemainingMembers int `json:"advance_balance_remaining_members"`

	AdvanceBalanceIsActive  bool      `json:"advance_balance_is_active"`
	AdvanceBalanceNote      *string   `json:"advance_balance_note,omitempty"`
	AdvanceBalanceCreatedAt time.Time `json:"advance_balance_created_at"`
}

type AdvanceConsumptionResponse struct {
	AdvanceConsumptionID        uuid.UUID `json:"advance_consumption_id"`
	AdvanceConsumptionClientID  uuid.UUID `json:"advance_consumption_client_id"`
	AdvanceConsumptionDate      time.Time `json:"advance_consumption_date"`
	AdvanceConsumptionAmountIDR int       `json:"advance_consumption_amount_idr"`
	AdvanceConsumptionMembers   int       `json:"advance_consumption_members"`
	AdvanceConsumptionCreatedAt time.Time `json:"advance_consumption_created_at"`
}

func ToAdvanceBalanceResponse(m model.AdvanceBalanceModel) AdvanceBalanceResponse {
	return AdvanceBalanceResponse{
		AdvanceBalanceID:               m.AdvanceBalanceID,
		AdvanceBalanceClientID:         m.AdvanceBalanceClientID,
		AdvanceBalanceRemainingIDR:     m.AdvanceBalanceRemainingIDR,
		AdvanceBalanceRemainingMembers: m.AdvanceBalanceRemainingMembers,
		AdvanceBalanceIsActive:         m.AdvanceBalanceIsActive,
		AdvanceBalanceNote:             m.AdvanceBalanceNote,
		AdvanceBalanceCreatedAt:        m.AdvanceBalanceCreatedAt,
	}
}

func ToAdvanceConsumptionResponse(m model.AdvanceConsumptionModel) AdvanceConsumptionResponse {
	return AdvanceConsumptionResponse{
		AdvanceConsumptionID:        m.AdvanceConsumptionID,
		AdvanceConsumptionClientID:  m.AdvanceConsumptionClientID,
		AdvanceConsumptionDate:      m.AdvanceConsumptionDate,
		AdvanceConsumptionAmountIDR: m.AdvanceConsumptionAmountIDR,
		AdvanceConsumptionMembers:   m.AdvanceConsumptionMembers,
		AdvanceConsumptionCreatedAt: m.AdvanceConsumptionCreatedAt,
	}
}
