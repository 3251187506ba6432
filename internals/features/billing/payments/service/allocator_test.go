package service

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestAllocateExactAmountSettlesEverything(t *testing.T) {
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 50_000},
		{Date: day(3), AmountIDR: 75_000},
	}

	alloc := Allocate(225_000, dues)

	if alloc.PaidThrough == nil || !alloc.PaidThrough.Equal(day(3)) {
		t.Fatalf("paid_through = %v, ingin %v", alloc.PaidThrough, day(3))
	}
	if alloc.RemainingIDR != 0 {
		t.Errorf("remaining = %d, ingin 0", alloc.RemainingIDR)
	}
	if !alloc.Exhausted {
		t.Error("exhausted = false, ingin true")
	}
	if alloc.SettledDues != 3 {
		t.Errorf("settled = %d, ingin 3", alloc.SettledDues)
	}
}

func TestAllocateStopsAtFirstUnaffordableDue(t *testing.T) {
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 50_000},
		{Date: day(3), AmountIDR: 75_000},
	}

	// Cukup untuk hari 1 dan 2, kurang 5rb untuk hari 3. Tidak boleh ada
	// pelunasan sebagian ataupun loncat.
	alloc := Allocate(220_000, dues)

	if alloc.PaidThrough == nil || !alloc.PaidThrough.Equal(day(2)) {
		t.Fatalf("paid_through = %v, ingin %v", alloc.PaidThrough, day(2))
	}
	if alloc.RemainingIDR != 70_000 {
		t.Errorf("remaining = %d, ingin 70000", alloc.RemainingIDR)
	}
	if alloc.Exhausted {
		t.Error("exhausted = true, ingin false")
	}
}

func TestAllocateTooSmallForOldestDue(t *testing.T) {
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
	}

	alloc := Allocate(99_999, dues)

	if alloc.PaidThrough != nil {
		t.Fatalf("paid_through = %v, ingin nil", alloc.PaidThrough)
	}
	if alloc.RemainingIDR != 99_999 {
		t.Errorf("remaining = %d, ingin utuh 99999", alloc.RemainingIDR)
	}
	if alloc.SettledDues != 0 {
		t.Errorf("settled = %d, ingin 0", alloc.SettledDues)
	}
}

func TestAllocateZeroDuesAdvanceWatermarkForFree(t *testing.T) {
	// Hari 2 sudah tertutup deposit (tagihan 0): tetap menggeser watermark
	// tanpa memakan nominal.
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 0},
		{Date: day(3), AmountIDR: 75_000},
	}

	alloc := Allocate(100_000, dues)

	if alloc.PaidThrough == nil || !alloc.PaidThrough.Equal(day(2)) {
		t.Fatalf("paid_through = %v, ingin %v", alloc.PaidThrough, day(2))
	}
	if alloc.RemainingIDR != 0 {
		t.Errorf("remaining = %d, ingin 0", alloc.RemainingIDR)
	}
	if alloc.SettledDues != 2 {
		t.Errorf("settled = %d, ingin 2", alloc.SettledDues)
	}
}

func TestAllocateOverpayment(t *testing.T) {
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
	}

	alloc := Allocate(150_000, dues)

	if !alloc.Exhausted {
		t.Fatal("exhausted = false, ingin true")
	}
	if alloc.RemainingIDR != 50_000 {
		t.Errorf("remaining = %d, ingin 50000", alloc.RemainingIDR)
	}
}

func TestAllocateIgnoresInputOrder(t *testing.T) {
	shuffled := []DueLine{
		{Date: day(3), AmountIDR: 75_000},
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 50_000},
	}

	alloc := Allocate(150_000, shuffled)

	// Harus jalan dari tertua: hari 1 dan 2 lunas, hari 3 tidak.
	if alloc.PaidThrough == nil || !alloc.PaidThrough.Equal(day(2)) {
		t.Fatalf("paid_through = %v, ingin %v", alloc.PaidThrough, day(2))
	}
}

func TestAllocateWatermarkMonotoneOverAmount(t *testing.T) {
	// Sapu nominal dari 0 sampai lewat total tagihan: nominal lebih besar
	// tidak boleh menghasilkan watermark lebih mundur atau settle lebih
	// sedikit. Hari 2 bernilai nol (tertutup deposit) ikut disapu karena
	// dia menggeser watermark gratis.
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 0},
		{Date: day(3), AmountIDR: 150_000},
		{Date: day(4), AmountIDR: 200_000},
	}

	var prevWatermark *time.Time
	prevSettled := 0
	for amount := 0; amount <= 500_000; amount += 7_000 {
		alloc := Allocate(amount, dues)

		if prevWatermark != nil {
			if alloc.PaidThrough == nil {
				t.Fatalf("nominal %d: watermark hilang, sebelumnya %v", amount, *prevWatermark)
			}
			if alloc.PaidThrough.Before(*prevWatermark) {
				t.Fatalf("nominal %d: watermark mundur %v → %v", amount, *prevWatermark, *alloc.PaidThrough)
			}
		}
		if alloc.SettledDues < prevSettled {
			t.Fatalf("nominal %d: settled turun %d → %d", amount, prevSettled, alloc.SettledDues)
		}

		prevWatermark = alloc.PaidThrough
		prevSettled = alloc.SettledDues
	}
}

func TestAllocateEmptyDues(t *testing.T) {
	alloc := Allocate(100_000, nil)

	if alloc.PaidThrough != nil {
		t.Errorf("paid_through = %v, ingin nil", alloc.PaidThrough)
	}
	if !alloc.Exhausted {
		t.Error("exhausted = false, ingin true (tidak ada tagihan tersisa)")
	}
	if alloc.RemainingIDR != 100_000 {
		t.Errorf("remaining = %d, ingin 100000", alloc.RemainingIDR)
	}
}

func TestSumThrough(t *testing.T) {
	dues := []DueLine{
		{Date: day(1), AmountIDR: 100_000},
		{Date: day(2), AmountIDR: 50_000},
		{Date: day(3), AmountIDR: 75_000},
	}

	cases := []struct {
		name   string
		cutoff time.Time
		want   int
	}{
		{"sebelum semua", day(1).AddDate(0, 0, -1), 0},
		{"inklusif cutoff", day(2), 150_000},
		{"semua", day(3), 225_000},
		{"lewat semua", day(10), 225_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SumThrough(dues, tc.cutoff); got != tc.want {
				t.Errorf("SumThrough(%v) = %d, ingin %d", tc.cutoff, got, tc.want)
			}
		})
	}
}

func TestSettleAllCutoffDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"sebelum jam batas → kemarin",
			time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			"tepat jam batas → hari ini",
			time.Date(2026, 3, 10, 21, 30, 0, 0, loc),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			"sesudah jam batas → hari ini",
			time.Date(2026, 3, 10, 23, 0, 0, 0, loc),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SettleAllCutoffDate(tc.now, 21, 30)
			if !got.Equal(tc.want) {
				t.Errorf("cutoff = %v, ingin %v", got, tc.want)
			}
		})
	}
}
