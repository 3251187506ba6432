package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	advanceService "rapatku_backend/internals/features/billing/advances/service"
	duesModel "rapatku_backend/internals/features/billing/dues/model"
	"rapatku_backend/internals/features/billing/payments/model"
)

/* ===================== GORM stores ===================== */
/* Semua method menerima *gorm.DB yang SUDAH berada dalam transaksi
   controller; GetForUpdate mengunci row payment supaya transisi per
   payment terserialisasi. */

type GormStores struct {
	DB *gorm.DB
}

func NewGormStores(tx *gorm.DB) *GormStores { return &GormStores{DB: tx} }

/* -------- PaymentStore -------- */

func (g *GormStores) GetForUpdate(ctx context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	var p model.PaymentModel
	err := g.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "payment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (g *GormStores) Save(ctx context.Context, p *model.PaymentModel) error {
	return g.DB.WithContext(ctx).Save(p).Error
}

func (g *GormStores) SoftDelete(ctx context.Context, p *model.PaymentModel) error {
	return g.DB.WithContext(ctx).Delete(p).Error
}

// LastApprovedPaidThrough: watermark per client di-derive dari approved
// payment paling baru yang masih hidup, bukan disimpan terpisah. Reversal
// otomatis menggeser watermark ke approve sebelumnya.
func (g *GormStores) LastApprovedPaidThrough(ctx context.Context, clientID uuid.UUID) (*time.Time, error) {
	var p model.PaymentModel
	err := g.DB.WithContext(ctx).
		Where("payment_client_id = ? AND payment_status = ? AND payment_paid_through IS NOT NULL",
			clientID, model.PaymentStatusApproved).
		Order("payment_approved_at DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p.PaymentPaidThrough, nil
}

func (g *GormStores) ResolveRejectedBefore(ctx context.Context, clientID uuid.UUID, at time.Time) error {
	return g.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_client_id = ? AND payment_status = ? AND payment_resolved_at IS NULL AND payment_rejected_at < ?",
			clientID, model.PaymentStatusRejected, at).
		Update("payment_resolved_at", at).Error
}

func (g *GormStores) SumRejectedOutstanding(ctx context.Context, clientID uuid.UUID) (int, error) {
	var total int64
	err := g.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_client_id = ? AND payment_status = ? AND payment_resolved_at IS NULL",
			clientID, model.PaymentStatusRejected).
		Select("COALESCE(SUM(payment_amount_idr), 0)").
		Scan(&total).Error
	return int(total), err
}

/* -------- DueStore -------- */

func (g *GormStores) ListUnsettledAfter(ctx context.Context, clientID uuid.UUID, after *time.Time) ([]DueLine, error) {
	q := g.DB.WithContext(ctx).
		Model(&duesModel.DailyDueModel{}).
		Where("daily_due_client_id = ?", clientID)
	if after != nil {
		q = q.Where("daily_due_date > ?", *after)
	}

	var rows []duesModel.DailyDueModel
	if err := q.Order("daily_due_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]DueLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, DueLine{Date: r.DailyDueDate, AmountIDR: r.DailyDueAmountIDR})
	}
	return lines, nil
}

func (g *GormStores) OutstandingTotalAfter(ctx context.Context, clientID uuid.UUID, after *time.Time) (int, error) {
	q := g.DB.WithContext(ctx).
		Model(&duesModel.DailyDueModel{}).
		Where("daily_due_client_id = ?", clientID)
	if after != nil {
		q = q.Where("daily_due_date > ?", *after)
	}

	var total int64
	err := q.Select("COALESCE(SUM(daily_due_amount_idr), 0)").Scan(&total).Error
	return int(total), err
}

/* -------- AdvanceStore -------- */

func (g *GormStores) RemainingTotal(ctx context.Context, clientID uuid.UUID) (int, error) {
	return advanceService.RemainingTotal(g.DB.WithContext(ctx), clientID)
}
