package dto

import (
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/meetings/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// CreateMeetingRequest: catat meeting selesai (member_count 0 sah —
// meeting kosong tetap tercatat tapi tidak menambah tagihan)
type CreateMeetingRequest struct {
	MeetingDate        string  `json:"meeting_date" validate:"required"` // "2006-01-02"
	MeetingTitle       string  `json:"meeting_title" validate:"required,min=2,max=160"`
	MeetingMemberCount int     `json:"meeting_member_count" validate:"min=0"`
	MeetingCategory    string  `json:"meeting_category" validate:"omitempty,oneof=domestic foreign premium"`
	MeetingProofURL    *string `json:"meeting_proof_url,omitempty" validate:"omitempty,url"`
	MeetingNote        *string `json:"meeting_note,omitempty"`
}

// UpdateMeetingRequest: koreksi data meeting (tanggal tidak bisa diubah;
// salah tanggal = hapus lalu buat ulang)
type UpdateMeetingRequest struct {
	MeetingTitle       *string `json:"meeting_title,omitempty" validate:"omitempty,min=2,max=160"`
	MeetingMemberCount *int    `json:"meeting_member_count,omitempty" validate:"omitempty,min=0"`
	MeetingCategory    *string `json:"meeting_category,omitempty" validate:"omitempty,oneof=domestic foreign premium"`
	MeetingStatus      *string `json:"meeting_status,omitempty" validate:"omitempty,oneof=active not_live cancelled"`
	MeetingNote        *string `json:"meeting_note,omitempty"`
}

// AttachProofRequest: lampirkan bukti meeting (prasyarat meeting ikut tagihan)
type AttachProofRequest struct {
	MeetingProofURL string `json:"meeting_proof_url" validate:"required,url"`
}

func (r *UpdateMeetingRequest) ApplyTo(m *model.MeetingModel) {
	if r.MeetingTitle != nil {
		m.MeetingTitle = *r.MeetingTitle
	}
	if r.MeetingMemberCount != nil {
		m.MeetingMemberCount = *r.MeetingMemberCount
	}
	if r.MeetingCategory != nil {
		m.MeetingCategory = model.MeetingCategory(*r.MeetingCategory)
	}
	if r.MeetingStatus != nil {
		m.MeetingStatus = model.MeetingStatus(*r.MeetingStatus)
	}
	if r.MeetingNote != nil {
		m.MeetingNote = r.MeetingNote
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type MeetingResponse struct {
	MeetingID       uuid.UUID `json:"meeting_id"`
	MeetingClientID uuid.UUID `json:"meeting_client_id"`

	MeetingDate        time.Time `json:"meeting_date"`
	MeetingTitle       string    `json:"meeting_title"`
	MeetingMemberCount int       `json:"meeting_member_count"`
	MeetingCategory    string    `json:"meeting_category"`

	MeetingProofURL *string `json:"meeting_proof_url,omitempty"`
	MeetingStatus   string  `json:"meeting_status"`
	MeetingBillable bool    `json:"meeting_billable"`

	MeetingNote      *string   `json:"meeting_note,omitempty"`
	MeetingCreatedAt time.Time `json:"meeting_created_at"`
}

func ToMeetingResponse(m model.MeetingModel) MeetingResponse {
	return MeetingResponse{
		MeetingID:          m.MeetingID,
		MeetingClientID:    m.MeetingClientID,
		MeetingDate:        m.MeetingDate,
		MeetingTitle:       m.MeetingTitle,
		MeetingMemberCount: m.MeetingMemberCount,
		MeetingCategory:    string(m.MeetingCategory),
		MeetingProofURL:    m.MeetingProofURL,
		MeetingStatus:      string(m.MeetingStatus),
		MeetingBillable:    m.Billable(),
		MeetingNote:        m.MeetingNote,
		MeetingCreatedAt:   m.MeetingCreatedAt,
	}
}
