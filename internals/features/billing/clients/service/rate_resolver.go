package service

import (
	"fmt"

	clientModel "rapatku_backend/internals/features/billing/clients/model"
	meetingModel "rapatku_backend/internals/features/billing/meetings/model"
)

// ResolveRate menentukan tarif per peserta (IDR) untuk satu kategori meeting.
//
// Aturan fallback:
//   - domestic: tarif client (wajib ada)
//   - foreign : tarif foreign client, kalau kosong pakai domestic
//   - premium : override client, kalau kosong pakai default sistem
//
// Tarif kategori yang kosong tidak pernah jadi error; yang jadi error hanya
// client yang tidak ada / konfigurasinya rusak.
func ResolveRate(client *clientModel.ClientModel, category meetingModel.MeetingCategory, defaultPremiumIDR int) (int, error) {
	if client == nil {
		return 0, ErrClientNotFound
	}
	if client.ClientRateDomesticIDR < 0 {
		return 0, fmt.Errorf("%w: tarif domestic negatif", ErrRateNotConfigured)
	}

	switch category {
	case meetingModel.MeetingCategoryDomestic:
		return client.ClientRateDomesticIDR, nil

	case meetingModel.MeetingCategoryForeign:
		if client.ClientRateForeignIDR != nil && *client.ClientRateForeignIDR >= 0 {
			return *client.ClientRateForeignIDR, nil
		}
		return client.ClientRateDomesticIDR, nil

	case meetingModel.MeetingCategoryPremium:
		if client.ClientRatePremiumIDR != nil && *client.ClientRatePremiumIDR >= 0 {
			return *client.ClientRatePremiumIDR, nil
		}
		if defaultPremiumIDR < 0 {
			return 0, fmt.Errorf("%w: default premium negatif", ErrRateNotConfigured)
		}
		return defaultPremiumIDR, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrRateInvalidCategory, category)
	}
}
