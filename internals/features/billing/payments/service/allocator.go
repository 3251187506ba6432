package service

import (
	"sort"
	"time"

	"rapatku_backend/internals/helpers/dbtime"
)

// DueLine: satu tagihan harian yang belum settle, input allocator.
type DueLine struct {
	Date      time.Time
	AmountIDR int
}

// Allocation: hasil settlement FIFO.
type Allocation struct {
	// Tanggal terakhir yang lunas penuh; nil kalau tagihan tertua pun
	// tidak tertutup.
	PaidThrough *time.Time
	// Sisa nominal setelah jalan sejauh mungkin. Kalau semua tagihan
	// habis dan sisa > 0, itu overpayment (dilaporkan, bukan otomatis
	// jadi deposit). Kalau berhenti di tengah, itu nominal yang kurang
	// untuk tagihan berikutnya.
	RemainingIDR int
	// Jumlah tagihan yang lunas (termasuk yang nol karena deposit).
	SettledDues int
	// true kalau seluruh daftar tagihan habis dilunasi.
	Exhausted bool
}

// Allocate: settlement FIFO deterministik.
//
// Jalan dari tagihan tertua: satu tagihan hanya bisa lunas utuh; begitu
// ketemu tagihan yang tidak terjangkau, berhenti — tidak ada pelunasan
// sebagian dan tidak ada loncat ke tanggal belakangan. Watermark jadinya
// selalu satu tanggal skalar: "semua yang sesudah tanggal X belum lunas".
//
// Tagihan bernilai nol (sudah tertutup deposit) dianggap lunas dan
// menggeser watermark tanpa memakan nominal.
//
// Urutan di-sort ulang di sini setiap kali, tidak pernah mengandalkan
// urutan dari storage.
func Allocate(amountIDR int, dues []DueLine) Allocation {
	sorted := make([]DueLine, len(dues))
	copy(sorted, dues)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	alloc := Allocation{RemainingIDR: amountIDR}
	for _, due := range sorted {
		if due.AmountIDR <= 0 {
			d := dbtime.DateOnly(due.Date)
			alloc.PaidThrough = &d
			alloc.SettledDues++
			continue
		}
		if alloc.RemainingIDR < due.AmountIDR {
			return alloc
		}
		alloc.RemainingIDR -= due.AmountIDR
		d := dbtime.DateOnly(due.Date)
		alloc.PaidThrough = &d
		alloc.SettledDues++
	}
	alloc.Exhausted = true
	return alloc
}

// SumThrough: total tagihan sampai (dan termasuk) cutoff — dipakai mode
// settle_all supaya nominalnya pas menutup semua tagihan by construction.
func SumThrough(dues []DueLine, cutoff time.Time) int {
	cut := dbtime.DateOnly(cutoff)
	total := 0
	for _, d := range dues {
		if !dbtime.DateOnly(d.Date).After(cut) {
			total += d.AmountIDR
		}
	}
	return total
}

// SettleAllCutoffDate: kebijakan warisan — sebelum jam batas (default
// 21:30) cutoff-nya kemarin, sesudahnya hari ini. Jam batasnya parameter,
// bukan konstanta; jangan anggap angka persisnya sakral.
func SettleAllCutoffDate(now time.Time, cutoffHour, cutoffMinute int) time.Time {
	boundary := time.Date(now.Year(), now.Month(), now.Day(), cutoffHour, cutoffMinute, 0, 0, now.Location())
	if now.Before(boundary) {
		return dbtime.DateOnly(now.AddDate(0, 0, -1))
	}
	return dbtime.DateOnly(now)
}
