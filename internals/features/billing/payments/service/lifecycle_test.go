package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/payments/model"
	notifModel "rapatku_backend/internals/features/home/notifications/model"
)

/* ===================== Mock stores in-memory ===================== */

type mockStores struct {
	payments map[uuid.UUID]*model.PaymentModel
	deleted  map[uuid.UUID]bool
	dues     []DueLine
	advance  int
}

func newMockStores() *mockStores {
	return &mockStores{
		payments: map[uuid.UUID]*model.PaymentModel{},
		deleted:  map[uuid.UUID]bool{},
	}
}

func (m *mockStores) put(p *model.PaymentModel) *model.PaymentModel {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	m.payments[p.PaymentID] = p
	return p
}

func (m *mockStores) GetForUpdate(_ context.Context, id uuid.UUID) (*model.PaymentModel, error) {
	p, ok := m.payments[id]
	if !ok || m.deleted[id] {
		return nil, ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockStores) Save(_ context.Context, p *model.PaymentModel) error {
	cp := *p
	m.payments[p.PaymentID] = &cp
	return nil
}

func (m *mockStores) SoftDelete(_ context.Context, p *model.PaymentModel) error {
	m.deleted[p.PaymentID] = true
	return nil
}

func (m *mockStores) LastApprovedPaidThrough(_ context.Context, clientID uuid.UUID) (*time.Time, error) {
	var best *model.PaymentModel
	for id, p := range m.payments {
		if m.deleted[id] || p.PaymentClientID != clientID {
			continue
		}
		if p.PaymentStatus != model.PaymentStatusApproved || p.PaymentPaidThrough == nil {
			continue
		}
		if best == nil || p.PaymentApprovedAt.After(*best.PaymentApprovedAt) {
			best = p
		}
	}
	if best == nil {
		return nil, nil
	}
	return best.PaymentPaidThrough, nil
}

func (m *mockStores) ResolveRejectedBefore(_ context.Context, clientID uuid.UUID, at time.Time) error {
	for id, p := range m.payments {
		if m.deleted[id] || p.PaymentClientID != clientID {
			continue
		}
		if p.PaymentStatus == model.PaymentStatusRejected && p.PaymentResolvedAt == nil &&
			p.PaymentRejectedAt != nil && p.PaymentRejectedAt.Before(at) {
			resolved := at
			p.PaymentResolvedAt = &resolved
		}
	}
	return nil
}

func (m *mockStores) SumRejectedOutstanding(_ context.Context, clientID uuid.UUID) (int, error) {
	total := 0
	for id, p := range m.payments {
		if m.deleted[id] || p.PaymentClientID != clientID {
			continue
		}
		if p.IsRejectedOutstanding() {
			total += p.PaymentAmountIDR
		}
	}
	return total, nil
}

func (m *mockStores) ListUnsettledAfter(_ context.Context, _ uuid.UUID, after *time.Time) ([]DueLine, error) {
	var out []DueLine
	for _, d := range m.dues {
		if after != nil && !d.Date.After(*after) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockStores) OutstandingTotalAfter(ctx context.Context, clientID uuid.UUID, after *time.Time) (int, error) {
	lines, _ := m.ListUnsettledAfter(ctx, clientID, after)
	total := 0
	for _, d := range lines {
		total += d.AmountIDR
	}
	return total, nil
}

func (m *mockStores) RemainingTotal(_ context.Context, _ uuid.UUID) (int, error) {
	return m.advance, nil
}

type capturedNotif struct {
	Title string
	Type  int
}

type mockSink struct {
	emitted []capturedNotif
}

func (s *mockSink) Emit(_ *uuid.UUID, title, _ string, notifType int) {
	s.emitted = append(s.emitted, capturedNotif{Title: title, Type: notifType})
}

// Sink tidak dipegang lifecycle: transisi mengembalikan Notification dan
// pemanggil (controller) yang mengirimkannya setelah commit. Test meniru
// pola itu dengan EmitTo eksplisit.
func newTestLifecycle(stores *mockStores) (*Lifecycle, *mockSink) {
	return NewLifecycle(stores, stores, stores), &mockSink{}
}

func pendingPayment(clientID uuid.UUID, amount int) *model.PaymentModel {
	return &model.PaymentModel{
		PaymentClientID:  clientID,
		PaymentAmountIDR: amount,
		PaymentKind:      model.PaymentKindCustom,
		PaymentStatus:    model.PaymentStatusPending,
	}
}

/* ===================== APPROVE ===================== */

func TestApproveMovesWatermarkToCoveredDate(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	stores.dues = []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 50_000},
	}
	p := stores.put(pendingPayment(clientID, 150_000))

	lc, sink := newTestLifecycle(stores)
	res, err := lc.Approve(context.Background(), p.PaymentID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	if res.PaidThrough == nil || !res.PaidThrough.Equal(day(2)) {
		t.Errorf("paid_through = %v, ingin %v", res.PaidThrough, day(2))
	}
	if res.OverpaymentIDR != 0 {
		t.Errorf("overpayment = %d, ingin 0", res.OverpaymentIDR)
	}
	saved := stores.payments[p.PaymentID]
	if saved.PaymentStatus != model.PaymentStatusApproved {
		t.Errorf("status = %s, ingin approved", saved.PaymentStatus)
	}
	res.Notification.EmitTo(sink)
	if len(sink.emitted) != 1 || sink.emitted[0].Type != notifModel.NotificationTypePaymentApproved {
		t.Errorf("notifikasi = %+v, ingin satu approved", sink.emitted)
	}
}

func TestApproveInheritsWatermarkWhenAmountTooSmall(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()

	// Sudah ada approve lama dengan watermark hari 2
	oldApprovedAt := time.Now().Add(-time.Hour)
	oldWatermark := day(2)
	old := stores.put(&model.PaymentModel{
		PaymentClientID:    clientID,
		PaymentAmountIDR:   150_000,
		PaymentStatus:      model.PaymentStatusApproved,
		PaymentApprovedAt:  &oldApprovedAt,
		PaymentPaidThrough: &oldWatermark,
	})
	_ = old

	// Tagihan berikutnya 75rb, nominal baru cuma 10rb
	stores.dues = []DueLine{{Date: day(3), AmountIDR: 75_000}}
	p := stores.put(pendingPayment(clientID, 10_000))

	lc, _ := newTestLifecycle(stores)
	res, err := lc.Approve(context.Background(), p.PaymentID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	// Watermark tidak boleh mundur: payment ini mewarisi hari 2
	if res.PaidThrough == nil || !res.PaidThrough.Equal(day(2)) {
		t.Errorf("paid_through = %v, ingin mewarisi %v", res.PaidThrough, day(2))
	}
	if res.SettledDues != 0 {
		t.Errorf("settled = %d, ingin 0", res.SettledDues)
	}
}

func TestApproveRecordsOverpayment(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	stores.dues = []DueLine{{Date: day(1), AmountIDR: 100_000}}
	p := stores.put(pendingPayment(clientID, 130_000))

	lc, _ := newTestLifecycle(stores)
	res, err := lc.Approve(context.Background(), p.PaymentID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	if res.OverpaymentIDR != 30_000 {
		t.Errorf("overpayment = %d, ingin 30000", res.OverpaymentIDR)
	}
	if stores.payments[p.PaymentID].PaymentOverpaymentIDR != 30_000 {
		t.Errorf("overpayment tidak tersimpan di payment")
	}
}

func TestApproveResolvesEarlierRejectedPayments(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()

	rejectedAt := time.Now().Add(-time.Hour)
	rejected := stores.put(&model.PaymentModel{
		PaymentClientID:   clientID,
		PaymentAmountIDR:  40_000,
		PaymentStatus:     model.PaymentStatusRejected,
		PaymentRejectedAt: &rejectedAt,
	})

	stores.dues = []DueLine{{Date: day(1), AmountIDR: 100_000}}
	p := stores.put(pendingPayment(clientID, 100_000))

	lc, _ := newTestLifecycle(stores)
	if _, err := lc.Approve(context.Background(), p.PaymentID); err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	if stores.payments[rejected.PaymentID].PaymentResolvedAt == nil {
		t.Error("rejected lama belum resolved setelah approve baru")
	}
	if sum, _ := stores.SumRejectedOutstanding(context.Background(), clientID); sum != 0 {
		t.Errorf("rejected outstanding = %d, ingin 0", sum)
	}
}

func TestApproveRejectsNonPending(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	approvedAt := time.Now()
	p := stores.put(&model.PaymentModel{
		PaymentClientID:   clientID,
		PaymentAmountIDR:  50_000,
		PaymentStatus:     model.PaymentStatusApproved,
		PaymentApprovedAt: &approvedAt,
	})

	lc, _ := newTestLifecycle(stores)
	if _, err := lc.Approve(context.Background(), p.PaymentID); !errors.Is(err, ErrPaymentNotPending) {
		t.Errorf("err = %v, ingin ErrPaymentNotPending", err)
	}
}

func TestApproveReturnsNotificationWithoutEmitting(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	stores.dues = []DueLine{{Date: day(1), AmountIDR: 100_000}}
	p := stores.put(pendingPayment(clientID, 100_000))

	lc, sink := newTestLifecycle(stores)
	res, err := lc.Approve(context.Background(), p.PaymentID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	// Transisi hanya mengembalikan intent; tidak ada tulisan ke sink
	// sebelum pemanggil commit dan memanggil EmitTo sendiri.
	if len(sink.emitted) != 0 {
		t.Fatalf("sink sudah terisi %+v sebelum EmitTo", sink.emitted)
	}
	if res.Notification == nil || res.Notification.Type != notifModel.NotificationTypePaymentApproved {
		t.Fatalf("notification = %+v, ingin intent approved", res.Notification)
	}

	res.Notification.EmitTo(sink)
	if len(sink.emitted) != 1 {
		t.Fatalf("setelah EmitTo: %d notifikasi, ingin 1", len(sink.emitted))
	}

	// EmitTo aman untuk intent/sink nil
	var none *Notification
	none.EmitTo(sink)
	res.Notification.EmitTo(nil)
	if len(sink.emitted) != 1 {
		t.Fatalf("EmitTo nil menambah notifikasi: %d", len(sink.emitted))
	}
}

/* ===================== REJECT ===================== */

func TestRejectKeepsAmountOutstanding(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	p := stores.put(pendingPayment(clientID, 80_000))

	lc, sink := newTestLifecycle(stores)
	rejected, notif, err := lc.Reject(context.Background(), p.PaymentID, "Bukti transfer buram")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}

	if rejected.PaymentStatus != model.PaymentStatusRejected {
		t.Errorf("status = %s, ingin rejected", rejected.PaymentStatus)
	}
	if rejected.PaymentRejectReason == nil || *rejected.PaymentRejectReason != "Bukti transfer buram" {
		t.Errorf("reason = %v", rejected.PaymentRejectReason)
	}
	if sum, _ := stores.SumRejectedOutstanding(context.Background(), clientID); sum != 80_000 {
		t.Errorf("rejected outstanding = %d, ingin 80000", sum)
	}
	notif.EmitTo(sink)
	if len(sink.emitted) != 1 || sink.emitted[0].Type != notifModel.NotificationTypePaymentRejected {
		t.Errorf("notifikasi = %+v, ingin satu rejected", sink.emitted)
	}
}

/* ===================== DELETE ===================== */

func TestDeleteApprovedRestoresPreviousWatermark(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()

	t1 := time.Now().Add(-2 * time.Hour)
	w1 := day(2)
	stores.put(&model.PaymentModel{
		PaymentClientID:    clientID,
		PaymentAmountIDR:   150_000,
		PaymentStatus:      model.PaymentStatusApproved,
		PaymentApprovedAt:  &t1,
		PaymentPaidThrough: &w1,
	})

	t2 := time.Now().Add(-time.Hour)
	w2 := day(5)
	latest := stores.put(&model.PaymentModel{
		PaymentClientID:    clientID,
		PaymentAmountIDR:   200_000,
		PaymentStatus:      model.PaymentStatusApproved,
		PaymentApprovedAt:  &t2,
		PaymentPaidThrough: &w2,
	})

	lc, sink := newTestLifecycle(stores)
	newWatermark, notif, err := lc.DeleteApproved(context.Background(), latest.PaymentID)
	if err != nil {
		t.Fatalf("DeleteApproved error: %v", err)
	}

	// Watermark derived: balik ke approve sebelumnya
	if newWatermark == nil || !newWatermark.Equal(day(2)) {
		t.Errorf("watermark baru = %v, ingin %v", newWatermark, day(2))
	}
	if !stores.deleted[latest.PaymentID] {
		t.Error("payment belum soft-deleted")
	}
	notif.EmitTo(sink)
	if len(sink.emitted) != 1 || sink.emitted[0].Type != notifModel.NotificationTypePaymentReversed {
		t.Errorf("notifikasi = %+v, ingin satu reversed", sink.emitted)
	}
}

func TestDeleteApprovedRejectsPending(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	p := stores.put(pendingPayment(clientID, 50_000))

	lc, _ := newTestLifecycle(stores)
	if _, _, err := lc.DeleteApproved(context.Background(), p.PaymentID); !errors.Is(err, ErrPaymentNotApproved) {
		t.Errorf("err = %v, ingin ErrPaymentNotApproved", err)
	}
}

func TestDeletePendingChecksOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	stores := newMockStores()
	p := stores.put(pendingPayment(owner, 50_000))

	lc, _ := newTestLifecycle(stores)

	if err := lc.DeletePending(context.Background(), p.PaymentID, stranger); !errors.Is(err, ErrPaymentNotOwned) {
		t.Errorf("err = %v, ingin ErrPaymentNotOwned", err)
	}
	if err := lc.DeletePending(context.Background(), p.PaymentID, owner); err != nil {
		t.Errorf("owner gagal menarik: %v", err)
	}
	if !stores.deleted[p.PaymentID] {
		t.Error("payment belum terhapus")
	}
}

/* ===================== QUOTE & SUMMARY ===================== */

func TestQuoteSettleAll(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	stores.dues = []DueLine{
		{Date: day(8), AmountIDR: 100_000},
		{Date: day(9), AmountIDR: 50_000},
		{Date: day(10), AmountIDR: 75_000},
	}

	lc, _ := newTestLifecycle(stores)

	// Jam 09:00 tanggal 10: sebelum jam batas, cutoff kemarin (hari 9)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	amount, cutoff, err := lc.QuoteSettleAll(context.Background(), clientID, now, 21, 30)
	if err != nil {
		t.Fatalf("QuoteSettleAll error: %v", err)
	}
	if amount != 150_000 {
		t.Errorf("amount = %d, ingin 150000", amount)
	}
	if !cutoff.Equal(day(9)) {
		t.Errorf("cutoff = %v, ingin %v", cutoff, day(9))
	}
}

func TestQuoteSettleAllNothingToSettle(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()

	lc, _ := newTestLifecycle(stores)
	now := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	if _, _, err := lc.QuoteSettleAll(context.Background(), clientID, now, 21, 30); !errors.Is(err, ErrNothingToSettle) {
		t.Errorf("err = %v, ingin ErrNothingToSettle", err)
	}
}

func TestSummaryBalances(t *testing.T) {
	clientID := uuid.New()
	stores := newMockStores()
	stores.advance = 60_000

	approvedAt := time.Now().Add(-time.Hour)
	w := day(2)
	stores.put(&model.PaymentModel{
		PaymentClientID:    clientID,
		PaymentAmountIDR:   150_000,
		PaymentStatus:      model.PaymentStatusApproved,
		PaymentApprovedAt:  &approvedAt,
		PaymentPaidThrough: &w,
	})
	rejectedAt := time.Now().Add(-30 * time.Minute)
	stores.put(&model.PaymentModel{
		PaymentClientID:   clientID,
		PaymentAmountIDR:  40_000,
		PaymentStatus:     model.PaymentStatusRejected,
		PaymentRejectedAt: &rejectedAt,
	})
	stores.dues = []DueLine{
		{Date: day(1), AmountIDR: 100_000}, // sebelum watermark, tidak dihitung
		{Date: day(3), AmountIDR: 75_000},
		{Date: day(4), AmountIDR: 25_000},
	}

	lc, _ := newTestLifecycle(stores)
	sum, err := lc.Summary(context.Background(), clientID)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}

	if sum.PaidThrough == nil || !sum.PaidThrough.Equal(day(2)) {
		t.Errorf("paid_through = %v, ingin %v", sum.PaidThrough, day(2))
	}
	if sum.OutstandingDuesIDR != 100_000 {
		t.Errorf("outstanding = %d, ingin 100000", sum.OutstandingDuesIDR)
	}
	if sum.RejectedOutstandingIDR != 40_000 {
		t.Errorf("rejected outstanding = %d, ingin 40000", sum.RejectedOutstandingIDR)
	}
	if sum.AdvanceRemainingIDR != 60_000 {
		t.Errorf("advance = %d, ingin 60000", sum.AdvanceRemainingIDR)
	}
}
