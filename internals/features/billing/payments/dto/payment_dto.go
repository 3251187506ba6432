package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"rapatku_backend/internals/features/billing/payments/model"
)

/* =========================================================
   REQUEST DTOs
========================================================= */

// SubmitPaymentRequest: client mengajukan pembayaran.
//   - upto_date  : intent_date wajib; nominal dihitung server dari total
//     tagihan belum settle sampai tanggal itu
//   - settle_all : nominal & cutoff dihitung server
//   - custom     : amount wajib; watermark ditentukan saat approve
type SubmitPaymentRequest struct {
	PaymentKind       string  `json:"payment_kind" validate:"required,oneof=upto_date settle_all custom"`
	PaymentAmountIDR  int     `json:"payment_amount_idr" validate:"omitempty,gt=0"`
	PaymentIntentDate *string `json:"payment_intent_date,omitempty"` // "2006-01-02"
	PaymentProofURL   *string `json:"payment_proof_url,omitempty" validate:"omitempty,url"`
	PaymentNote       *string `json:"payment_note,omitempty"`
}

// RejectPaymentRequest: alasan wajib supaya client tahu harus apa
type RejectPaymentRequest struct {
	PaymentRejectReason string `json:"payment_reject_reason" validate:"required,min=3"`
}

// CheckoutRequest: buat sesi checkout Midtrans untuk payment pending
type CheckoutRequest struct {
	PaymentID uuid.UUID `json:"payment_id" validate:"required"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type PaymentResponse struct {
	PaymentID       uuid.UUID  `json:"payment_id"`
	PaymentClientID uuid.UUID  `json:"payment_client_id"`
	PaymentUserID   *uuid.UUID `json:"payment_user_id,omitempty"`

	PaymentAmountIDR  int        `json:"payment_amount_idr"`
	PaymentKind       string     `json:"payment_kind"`
	PaymentIntentDate *time.Time `json:"payment_intent_date,omitempty"`
	PaymentProofURL   *string    `json:"payment_proof_url,omitempty"`

	PaymentStatus         string     `json:"payment_status"`
	PaymentPaidThrough    *time.Time `json:"payment_paid_through,omitempty"`
	PaymentOverpaymentIDR int        `json:"payment_overpayment_idr"`

	PaymentRejectReason *string    `json:"payment_reject_reason,omitempty"`
	PaymentResolvedAt   *time.Time `json:"payment_resolved_at,omitempty"`

	PaymentExternalID  *string `json:"payment_external_id,omitempty"`
	PaymentCheckoutURL *string `json:"payment_checkout_url,omitempty"`

	PaymentApprovedAt *time.Time `json:"payment_approved_at,omitempty"`
	PaymentRejectedAt *time.Time `json:"payment_rejected_at,omitempty"`

	PaymentNote *string           `json:"payment_note,omitempty"`
	PaymentMeta datatypes.JSONMap `json:"payment_meta,omitempty"`

	CreatedAt time.Time `json:"payment_created_at"`
}

// SettleAllQuoteResponse: penawaran nominal "settle semua" sampai cutoff
type SettleAllQuoteResponse struct {
	AmountIDR  int       `json:"amount_idr"`
	CutoffDate time.Time `json:"cutoff_date"`
}

type CheckoutResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:       m.PaymentID,
		PaymentClientID: m.PaymentClientID,
		PaymentUserID:   m.PaymentUserID,

		PaymentAmountIDR:  m.PaymentAmountIDR,
		PaymentKind:       m.PaymentKind,
		PaymentIntentDate: m.PaymentIntentDate,
		PaymentProofURL:   m.PaymentProofURL,

		PaymentStatus:         m.PaymentStatus,
		PaymentPaidThrough:    m.PaymentPaidThrough,
		PaymentOverpaymentIDR: m.PaymentOverpaymentIDR,

		PaymentRejectReason: m.PaymentRejectReason,
		PaymentResolvedAt:   m.PaymentResolvedAt,

		PaymentExternalID:  m.PaymentExternalID,
		PaymentCheckoutURL: m.PaymentCheckoutURL,

		PaymentApprovedAt: m.PaymentApprovedAt,
		PaymentRejectedAt: m.PaymentRejectedAt,

		PaymentNote: m.PaymentNote,
		PaymentMeta: m.PaymentMeta,

		CreatedAt: m.CreatedAt,
	}
}
