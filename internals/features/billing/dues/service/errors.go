package service

import "errors"

var (
	// ErrNegativeDue: invariant amount >= 0 ketabrak. Bug logika atau data
	// adjustment basi — jangan pernah dipersist, log lalu abort.
	ErrNegativeDue = errors.New("tagihan harian negatif")

	// ErrManualAdjustmentInvalid: adjustment admin bikin amount negatif.
	ErrManualAdjustmentInvalid = errors.New("manual adjustment membuat tagihan negatif")
)
