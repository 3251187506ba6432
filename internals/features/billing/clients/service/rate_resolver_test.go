package service

import (
	"errors"
	"testing"

	"rapatku_backend/internals/features/billing/clients/model"
	meetingModel "rapatku_backend/internals/features/billing/meetings/model"
)

func intPtr(v int) *int { return &v }

func TestResolveRate(t *testing.T) {
	full := &model.ClientModel{
		ClientRateDomesticIDR: 25_000,
		ClientRateForeignIDR:  intPtr(40_000),
		ClientRatePremiumIDR:  intPtr(60_000),
	}
	domesticOnly := &model.ClientModel{
		ClientRateDomesticIDR: 25_000,
	}

	cases := []struct {
		name     string
		client   *model.ClientModel
		category meetingModel.MeetingCategory
		want     int
	}{
		{"domestic", full, meetingModel.MeetingCategoryDomestic, 25_000},
		{"foreign dengan rate sendiri", full, meetingModel.MeetingCategoryForeign, 40_000},
		{"foreign fallback ke domestic", domesticOnly, meetingModel.MeetingCategoryForeign, 25_000},
		{"premium dengan override", full, meetingModel.MeetingCategoryPremium, 60_000},
		{"premium fallback ke default global", domesticOnly, meetingModel.MeetingCategoryPremium, 30_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveRate(tc.client, tc.category, 30_000)
			if err != nil {
				t.Fatalf("ResolveRate error: %v", err)
			}
			if got != tc.want {
				t.Errorf("rate = %d, ingin %d", got, tc.want)
			}
		})
	}
}

func TestResolveRateNilClient(t *testing.T) {
	_, err := ResolveRate(nil, meetingModel.MeetingCategoryDomestic, 30_000)
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("err = %v, ingin ErrClientNotFound", err)
	}
}

func TestResolveRateUnknownCategory(t *testing.T) {
	client := &model.ClientModel{ClientRateDomesticIDR: 25_000}
	_, err := ResolveRate(client, meetingModel.MeetingCategory("barter"), 30_000)
	if !errors.Is(err, ErrRateInvalidCategory) {
		t.Errorf("err = %v, ingin ErrRateInvalidCategory", err)
	}
}
