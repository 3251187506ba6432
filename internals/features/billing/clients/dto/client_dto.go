package dto

import (
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/clients/model"
)

/* =========================================================
   REQUEST DTOs (JSON tags = nama kolom DB, snake_case)
========================================================= */

// CreateClientRequest: registrasi client baru beserta rate kontraknya
type CreateClientRequest struct {
	ClientUserID *uuid.UUID `json:"client_user_id,omitempty"`
	ClientName   string     `json:"client_name" validate:"required,min=2,max=120"`

	ClientRateDomesticIDR int  `json:"client_rate_domestic_idr" validate:"required,gt=0"`
	ClientRateForeignIDR  *int `json:"client_rate_foreign_idr,omitempty" validate:"omitempty,gt=0"`
	ClientRatePremiumIDR  *int `json:"client_rate_premium_idr,omitempty" validate:"omitempty,gt=0"`

	ClientNote *string `json:"client_note,omitempty"`
}

// UpdateClientRequest: partial update (pointer = field opsional).
// Perubahan rate hanya berlaku untuk perhitungan SETELAH update;
// daily dues lama tidak dihitung ulang otomatis.
type UpdateClientRequest struct {
	ClientName *string `json:"client_name,omitempty" validate:"omitempty,min=2,max=120"`

	ClientRateDomesticIDR *int `json:"client_rate_domestic_idr,omitempty" validate:"omitempty,gt=0"`
	ClientRateForeignIDR  *int `json:"client_rate_foreign_idr,omitempty" validate:"omitempty,gt=0"`
	ClientRatePremiumIDR  *int `json:"client_rate_premium_idr,omitempty" validate:"omitempty,gt=0"`

	ClientIsActive *bool   `json:"client_is_active,omitempty"`
	ClientNote     *string `json:"client_note,omitempty"`
}

func (r *UpdateClientRequest) ApplyTo(m *model.ClientModel) {
	if r.ClientName != nil {
		m.ClientName = *r.ClientName
	}
	if r.ClientRateDomesticIDR != nil {
		m.ClientRateDomesticIDR = *r.ClientRateDomesticIDR
	}
	if r.ClientRateForeignIDR != nil {
		m.ClientRateForeignIDR = r.ClientRateForeignIDR
	}
	if r.ClientRatePremiumIDR != nil {
		m.ClientRatePremiumIDR = r.ClientRatePremiumIDR
	}
	if r.ClientIsActive != nil {
		m.ClientIsActive = *r.ClientIsActive
	}
	if r.ClientNote != nil {
		m.ClientNote = r.ClientNote
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ClientResponse struct {
	ClientID     uuid.UUID  `json:"client_id"`
	ClientUserID *uuid.UUID `json:"client_user_id,omitempty"`
	ClientName   string     `json:"client_name"`

	ClientRateDomesticIDR int  `json:"client_rate_domestic_idr"`
	ClientRateForeignIDR  *int `json:"client_rate_foreign_idr,omitempty"`
	ClientRatePremiumIDR  *int `json:"client_rate_premium_idr,omitempty"`

	ClientIsActive bool    `json:"client_is_active"`
	ClientNote     *string `json:"client_note,omitempty"`

	ClientCreatedAt time.Time `json:"client_created_at"`
}

/* =========================================================
   MAPPERS
========================================================= */

func ToClientModel(req CreateClientRequest) model.ClientModel {
	return model.ClientModel{
		ClientUserID:          req.ClientUserID,
		ClientName:            req.ClientName,
		ClientRateDomesticIDR: req.ClientRateDomesticIDR,
		ClientRateForeignIDR:  req.ClientRateForeignIDR,
		ClientRatePremiumIDR:  req.ClientRatePremiumIDR,
		ClientIsActive:        true,
		ClientNote:            req.ClientNote,
	}
}

func ToClientResponse(m model.ClientModel) ClientResponse {
	return ClientResponse{
		ClientID:              m.ClientID,
		ClientUserID:          m.ClientUserID,
		ClientName:            m.ClientName,
		ClientRateDomesticIDR: m.ClientRateDomesticIDR,
		ClientRateForeignIDR:  m.ClientRateForeignIDR,
		ClientRatePremiumIDR:  m.ClientRatePremiumIDR,
		ClientIsActive:        m.ClientIsActive,
		ClientNote:            m.ClientNote,
		ClientCreatedAt:       m.ClientCreatedAt,
	}
}
