package service

import "errors"

var (
	ErrPaymentNotFound    = errors.New("pembayaran tidak ditemukan")
	ErrPaymentNotPending  = errors.New("pembayaran sudah diproses")
	ErrPaymentNotApproved = errors.New("pembayaran belum berstatus approved")
	ErrPaymentNotOwned    = errors.New("pembayaran bukan milik client ini")
	ErrNothingToSettle    = errors.New("tidak ada tagihan yang bisa di-settle")
	ErrGatewayDisabled    = errors.New("checkout gateway tidak aktif")
)
