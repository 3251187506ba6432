package service

import "errors"

// Error konfigurasi tarif: diteruskan ke admin, blokir agregasi untuk
// client yang bersangkutan saja.
var (
	ErrClientNotFound       = errors.New("client tidak ditemukan")
	ErrRateNotConfigured    = errors.New("tarif client belum dikonfigurasi")
	ErrRateInvalidCategory  = errors.New("kategori meeting tidak dikenal")
)
