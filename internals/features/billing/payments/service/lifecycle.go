package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"rapatku_backend/internals/features/billing/payments/model"
	notifModel "rapatku_backend/internals/features/home/notifications/model"
	"rapatku_backend/internals/helpers/dbtime"
)

// Lifecycle: state machine pembayaran.
//
//	pending → approved  (jalankan allocator, geser watermark, notifikasi)
//	pending → rejected  (nominal nyangkut di outstanding sampai resolved)
//	pending → dihapus owner (tanpa efek samping)
//	approved → dihapus admin (reversal; watermark balik ke approve
//	                          sebelumnya karena watermark-nya derived)
//
// Semua mutasi store diasumsikan jalan dalam satu transaksi DB milik
// pemanggil; gagal persist di tengah = seluruh transisi batal.
//
// Lifecycle sendiri tidak pernah menulis notifikasi: transisi yang
// butuh kabar ke user mengembalikan Notification, dan pemanggil
// mengirimkannya SETELAH transaksinya commit. Kalau emit jalan di dalam
// transaksi, rollback bisa meninggalkan notifikasi nyasar.
type Lifecycle struct {
	Payments PaymentStore
	Dues     DueStore
	Advances AdvanceStore
}

func NewLifecycle(payments PaymentStore, dues DueStore, advances AdvanceStore) *Lifecycle {
	return &Lifecycle{Payments: payments, Dues: dues, Advances: advances}
}

// Notification: pesan yang harus dikirim setelah transisi ter-commit.
type Notification struct {
	UserID  *uuid.UUID
	Title   string
	Message string
	Type    int
}

// EmitTo kirim pesan ke sink. Aman dipanggil dengan sink/intent nil.
func (n *Notification) EmitTo(sink NotificationSink) {
	if n == nil || sink == nil {
		return
	}
	sink.Emit(n.UserID, n.Title, n.Message, n.Type)
}

type ApproveResult struct {
	Payment        *model.PaymentModel
	PaidThrough    *time.Time
	RemainingIDR   int
	OverpaymentIDR int
	SettledDues    int
	Notification   *Notification
}

/* ======================= APPROVE ======================= */

// Approve: basis settlement di-derive ulang saat approve, bukan saat
// submit — tagihan bisa berubah di antara keduanya. Daftar tagihan selalu
// diambil setelah watermark berjalan, lalu allocator FIFO menentukan
// sampai mana nominal ini menjangkau.
func (s *Lifecycle) Approve(ctx context.Context, paymentID uuid.UUID) (*ApproveResult, error) {
	p, err := s.Payments.GetForUpdate(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !p.IsPending() {
		return nil, ErrPaymentNotPending
	}

	watermark, err := s.Payments.LastApprovedPaidThrough(ctx, p.PaymentClientID)
	if err != nil {
		return nil, err
	}
	dues, err := s.Dues.ListUnsettledAfter(ctx, p.PaymentClientID, watermark)
	if err != nil {
		return nil, err
	}

	alloc := Allocate(p.PaymentAmountIDR, dues)

	now := time.Now()
	p.PaymentStatus = model.PaymentStatusApproved
	p.PaymentApprovedAt = &now

	// Watermark tidak boleh mundur: kalau nominal tidak menutup tagihan
	// tertua pun, paid_through payment ini mewarisi watermark lama.
	if alloc.PaidThrough != nil {
		p.PaymentPaidThrough = alloc.PaidThrough
	} else {
		p.PaymentPaidThrough = watermark
	}

	// Overpayment: sisa setelah SEMUA tagihan habis. Tidak otomatis jadi
	// deposit — dilaporkan untuk ditindak admin.
	overpayment := 0
	if alloc.Exhausted && alloc.RemainingIDR > 0 {
		overpayment = alloc.RemainingIDR
	}
	p.PaymentOverpaymentIDR = overpayment
	if p.PaymentMeta == nil {
		p.PaymentMeta = datatypes.JSONMap{}
	}
	p.PaymentMeta["settled_dues"] = alloc.SettledDues
	p.PaymentMeta["remaining_idr"] = alloc.RemainingIDR

	if err := s.Payments.Save(ctx, p); err != nil {
		return nil, err
	}

	// Approve baru menyelesaikan nominal rejected yang masih nyangkut.
	if err := s.Payments.ResolveRejectedBefore(ctx, p.PaymentClientID, now); err != nil {
		return nil, err
	}

	return &ApproveResult{
		Payment:        p,
		PaidThrough:    p.PaymentPaidThrough,
		RemainingIDR:   alloc.RemainingIDR,
		OverpaymentIDR: overpayment,
		SettledDues:    alloc.SettledDues,
		Notification:   approvedNotification(p),
	}, nil
}

func approvedNotification(p *model.PaymentModel) *Notification {
	msg := fmt.Sprintf("Terima kasih! Pembayaran Rp%d Anda sudah disetujui.", p.PaymentAmountIDR)
	if p.PaymentPaidThrough != nil {
		msg += fmt.Sprintf(" Tagihan lunas sampai %s.", p.PaymentPaidThrough.Format("02 Jan 2006"))
	} else {
		msg += " Nominal belum menutup tagihan tertua; sisa tagihan masih berjalan."
	}
	if p.PaymentOverpaymentIDR > 0 {
		msg += fmt.Sprintf(" Ada kelebihan bayar Rp%d yang akan ditindak admin.", p.PaymentOverpaymentIDR)
	}
	return &Notification{
		UserID:  p.PaymentUserID,
		Title:   "Pembayaran disetujui",
		Message: msg,
		Type:    notifModel.NotificationTypePaymentApproved,
	}
}

/* ======================= REJECT ======================= */

func (s *Lifecycle) Reject(ctx context.Context, paymentID uuid.UUID, reason string) (*model.PaymentModel, *Notification, error) {
	p, err := s.Payments.GetForUpdate(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsPending() {
		return nil, nil, ErrPaymentNotPending
	}

	now := time.Now()
	p.PaymentStatus = model.PaymentStatusRejected
	p.PaymentRejectedAt = &now
	if reason != "" {
		p.PaymentRejectReason = &reason
	}

	if err := s.Payments.Save(ctx, p); err != nil {
		return nil, nil, err
	}

	msg := fmt.Sprintf("Pembayaran Rp%d Anda ditolak.", p.PaymentAmountIDR)
	if reason != "" {
		msg += " Alasan: " + reason
	}
	notif := &Notification{
		UserID:  p.PaymentUserID,
		Title:   "Pembayaran ditolak",
		Message: msg,
		Type:    notifModel.NotificationTypePaymentRejected,
	}
	return p, notif, nil
}

/* ======================= DELETE ======================= */

// DeletePending: owner menarik submission-nya sebelum diproses.
func (s *Lifecycle) DeletePending(ctx context.Context, paymentID, clientID uuid.UUID) error {
	p, err := s.Payments.GetForUpdate(ctx, paymentID)
	if err != nil {
		return err
	}
	if p.PaymentClientID != clientID {
		return ErrPaymentNotOwned
	}
	if !p.IsPending() {
		return ErrPaymentNotPending
	}
	return s.Payments.SoftDelete(ctx, p)
}

// DeleteApproved: reversal administratif. Karena watermark itu derived
// (approved payment paling baru yang tersisa), cukup soft-delete — tagihan
// yang tadinya tertutup otomatis muncul lagi di outstanding, dan hitung
// ulang totalnya idempoten.
func (s *Lifecycle) DeleteApproved(ctx context.Context, paymentID uuid.UUID) (*time.Time, *Notification, error) {
	p, err := s.Payments.GetForUpdate(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if !p.IsApproved() {
		return nil, nil, ErrPaymentNotApproved
	}

	if err := s.Payments.SoftDelete(ctx, p); err != nil {
		return nil, nil, err
	}

	newWatermark, err := s.Payments.LastApprovedPaidThrough(ctx, p.PaymentClientID)
	if err != nil {
		return nil, nil, err
	}

	notif := &Notification{
		UserID:  p.PaymentUserID,
		Title:   "Pembayaran dibatalkan",
		Message: fmt.Sprintf("Pembayaran Rp%d dibatalkan admin; tagihan terkait kembali berjalan.", p.PaymentAmountIDR),
		Type:    notifModel.NotificationTypePaymentReversed,
	}
	return newWatermark, notif, nil
}

/* ======================= QUOTE & SUMMARY ======================= */

// QuoteSettleAll: hitung nominal "settle semua" = jumlah pas seluruh
// tagihan belum settle sampai tanggal cutoff. Nominalnya dihitung server
// supaya coverage penuh terjamin by construction.
func (s *Lifecycle) QuoteSettleAll(ctx context.Context, clientID uuid.UUID, now time.Time, cutoffHour, cutoffMinute int) (int, time.Time, error) {
	watermark, err := s.Payments.LastApprovedPaidThrough(ctx, clientID)
	if err != nil {
		return 0, time.Time{}, err
	}
	dues, err := s.Dues.ListUnsettledAfter(ctx, clientID, watermark)
	if err != nil {
		return 0, time.Time{}, err
	}

	cutoff := SettleAllCutoffDate(now, cutoffHour, cutoffMinute)
	total := SumThrough(dues, cutoff)
	if total <= 0 {
		return 0, cutoff, ErrNothingToSettle
	}
	return total, cutoff, nil
}

// ClientSummary: angka-angka neraca satu client. Jumlahnya harus selalu
// balance: gross semua tagihan = approved + outstanding + rejected yang
// belum resolved.
type ClientSummary struct {
	PaidThrough            *time.Time `json:"paid_through,omitempty"`
	OutstandingDuesIDR     int        `json:"outstanding_dues_idr"`
	RejectedOutstandingIDR int        `json:"rejected_outstanding_idr"`
	AdvanceRemainingIDR    int        `json:"advance_remaining_idr"`
}

func (s *Lifecycle) Summary(ctx context.Context, clientID uuid.UUID) (*ClientSummary, error) {
	watermark, err := s.Payments.LastApprovedPaidThrough(ctx, clientID)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.Dues.OutstandingTotalAfter(ctx, clientID, watermark)
	if err != nil {
		return nil, err
	}
	rejected, err := s.Payments.SumRejectedOutstanding(ctx, clientID)
	if err != nil {
		return nil, err
	}
	advance := 0
	if s.Advances != nil {
		advance, err = s.Advances.RemainingTotal(ctx, clientID)
		if err != nil {
			return nil, err
		}
	}

	sum := &ClientSummary{
		OutstandingDuesIDR:     outstanding,
		RejectedOutstandingIDR: rejected,
		AdvanceRemainingIDR:    advance,
	}
	if watermark != nil {
		d := dbtime.DateOnly(*watermark)
		sum.PaidThrough = &d
	}
	return sum, nil
}
