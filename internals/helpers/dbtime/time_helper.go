// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"
)

// DateOnly: buang jam & zona, sisakan tanggal kalender (UTC midnight).
// Semua kolom type:date lewat sini biar perbandingan tanggal konsisten.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate: dua time.Time jatuh di tanggal kalender yang sama.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// ParseDate: terima "2006-01-02" (atau RFC3339, ambil tanggalnya saja).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return DateOnly(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// AppLocation: zona waktu aplikasi (kebijakan cutoff pakai jam lokal).
// Fallback ke WIB kalau tzdata tidak tersedia.
func AppLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*60*60)
}
