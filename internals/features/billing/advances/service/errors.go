package service

import "errors"

var (
	// ErrAdvanceConflict: decrement saldo kalah balapan dengan recompute
	// lain. Pemanggil boleh retry sekali, setelah itu surface sebagai
	// error transient ke user.
	ErrAdvanceConflict = errors.New("konflik pemakaian deposit, coba lagi")

	ErrAdvanceNotFound = errors.New("deposit tidak ditemukan")
)
