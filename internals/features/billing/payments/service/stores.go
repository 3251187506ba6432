package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/payments/model"
)

// Kontrak storage yang dipakai lifecycle. Implementasi produksi pakai GORM
// (gorm_store.go); test pakai mock in-memory.

type PaymentStore interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error)
	Save(ctx context.Context, p *model.PaymentModel) error
	SoftDelete(ctx context.Context, p *model.PaymentModel) error

	// Watermark: paid_through dari approved payment paling baru (yang
	// belum dihapus). nil = belum ada yang settle.
	LastApprovedPaidThrough(ctx context.Context, clientID uuid.UUID) (*time.Time, error)

	// Tandai pembayaran rejected yang belum resolved sebagai selesai
	// (dipanggil saat ada approve baru).
	ResolveRejectedBefore(ctx context.Context, clientID uuid.UUID, at time.Time) error

	SumRejectedOutstanding(ctx context.Context, clientID uuid.UUID) (int, error)
}

type DueStore interface {
	// Tagihan belum settle setelah watermark, urut tanggal naik.
	ListUnsettledAfter(ctx context.Context, clientID uuid.UUID, after *time.Time) ([]DueLine, error)
	OutstandingTotalAfter(ctx context.Context, clientID uuid.UUID, after *time.Time) (int, error)
}

type AdvanceStore interface {
	RemainingTotal(ctx context.Context, clientID uuid.UUID) (int, error)
}

// NotificationSink: fire-and-forget. Implementasi wajib menelan errornya
// sendiri — kegagalan notifikasi tidak boleh membatalkan transisi.
type NotificationSink interface {
	Emit(userID *uuid.UUID, title, message string, notifType int)
}
