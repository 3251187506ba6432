package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: payment_status, payment_kind */

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

const (
	// Bayar sampai tanggal tertentu (intent date diisi)
	PaymentKindUptoDate = "upto_date"
	// "Settle semua" sampai cutoff; nominal dihitung server dari total dues
	PaymentKindSettleAll = "settle_all"
	// Nominal bebas tanpa tanggal; watermark mengikuti sejauh mana nominalnya
	PaymentKindCustom = "custom"
)

/* ===================== Model ===================== */

type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentClientID uuid.UUID  `gorm:"column:payment_client_id;type:uuid;not null;index" json:"payment_client_id"`
	PaymentUserID   *uuid.UUID `gorm:"column:payment_user_id;type:uuid" json:"payment_user_id,omitempty"`

	// Nominal (IDR, single currency)
	PaymentAmountIDR int `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr > 0" json:"payment_amount_idr"`

	// Mode pembayaran & intent
	PaymentKind       string     `gorm:"column:payment_kind;type:payment_kind;not null;default:'custom'" json:"payment_kind"`
	PaymentIntentDate *time.Time `gorm:"column:payment_intent_date;type:date" json:"payment_intent_date,omitempty"`

	// Bukti transfer (URL opaque)
	PaymentProofURL *string `gorm:"column:payment_proof_url;type:text" json:"payment_proof_url,omitempty"`

	PaymentStatus string `gorm:"column:payment_status;type:payment_status;not null;default:'pending';index" json:"payment_status"`

	// Hasil settlement (diisi saat approve)
	PaymentPaidThrough    *time.Time `gorm:"column:payment_paid_through;type:date" json:"payment_paid_through,omitempty"`
	PaymentOverpaymentIDR int        `gorm:"column:payment_overpayment_idr;not null;default:0" json:"payment_overpayment_idr"`

	// Penolakan & penyelesaiannya
	PaymentRejectReason *string    `gorm:"column:payment_reject_reason;type:text" json:"payment_reject_reason,omitempty"`
	PaymentResolvedAt   *time.Time `gorm:"column:payment_resolved_at" json:"payment_resolved_at,omitempty"`

	// Info gateway (opsional, untuk checkout online)
	PaymentExternalID  *string `gorm:"column:payment_external_id;index" json:"payment_external_id,omitempty"`
	PaymentCheckoutURL *string `gorm:"column:payment_checkout_url" json:"payment_checkout_url,omitempty"`

	// Timestamps penting
	PaymentApprovedAt *time.Time `gorm:"column:payment_approved_at;index" json:"payment_approved_at,omitempty"`
	PaymentRejectedAt *time.Time `gorm:"column:payment_rejected_at" json:"payment_rejected_at,omitempty"`

	// Metadata & catatan
	PaymentNote *string           `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`
	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	// Base timestamps
	CreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

/* ===================== Helpers ===================== */

func (p *PaymentModel) IsPending() bool {
	return p.PaymentStatus == PaymentStatusPending
}

func (p *PaymentModel) IsApproved() bool {
	return p.PaymentStatus == PaymentStatusApproved
}

// IsRejectedOutstanding: nominal ditolak yang masih nyangkut di total
// outstanding (belum di-resolve approve berikutnya / admin).
func (p *PaymentModel) IsRejectedOutstanding() bool {
	return p.PaymentStatus == PaymentStatusRejected && p.PaymentResolvedAt == nil
}
