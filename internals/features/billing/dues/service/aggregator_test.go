package service

import (
	"testing"
	"time"

	clientModel "rapatku_backend/internals/features/billing/clients/model"
	meetingModel "rapatku_backend/internals/features/billing/meetings/model"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func meeting(d int, members int, cat meetingModel.MeetingCategory, proof *string, status meetingModel.MeetingStatus) meetingModel.MeetingModel {
	return meetingModel.MeetingModel{
		MeetingDate:        day(d),
		MeetingMemberCount: members,
		MeetingCategory:    cat,
		MeetingProofURL:    proof,
		MeetingStatus:      status,
	}
}

func TestAggregateDay(t *testing.T) {
	client := &clientModel.ClientModel{
		ClientRateDomesticIDR: 25_000,
		ClientRateForeignIDR:  intPtr(40_000),
	}
	proof := strPtr("https://cdn.rapatku.id/proofs/m1.jpg")

	meetings := []meetingModel.MeetingModel{
		// Ikut dihitung: 3×25rb + 2×40rb
		meeting(5, 3, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusActive),
		meeting(5, 2, meetingModel.MeetingCategoryForeign, proof, meetingModel.MeetingStatusActive),
		// Tanpa bukti: tidak ikut
		meeting(5, 10, meetingModel.MeetingCategoryDomestic, nil, meetingModel.MeetingStatusActive),
		// not_live: tidak ikut walau ada bukti
		meeting(5, 10, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusNotLive),
		// Tanggal lain: diabaikan
		meeting(6, 10, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusActive),
	}

	agg, err := AggregateDay(client, day(5), meetings, 30_000)
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}

	if want := 3*25_000 + 2*40_000; agg.GrossAmountIDR != want {
		t.Errorf("gross = %d, ingin %d", agg.GrossAmountIDR, want)
	}
	if agg.MeetingCount != 2 {
		t.Errorf("meeting_count = %d, ingin 2", agg.MeetingCount)
	}
	if agg.MemberCount != 5 {
		t.Errorf("member_count = %d, ingin 5", agg.MemberCount)
	}
}

func TestAggregateDayCancelledStillBillable(t *testing.T) {
	// Dibatalkan tapi ada bukti pelaksanaan: tetap ditagih. Hanya not_live
	// yang menggugurkan tagihan.
	client := &clientModel.ClientModel{ClientRateDomesticIDR: 25_000}
	proof := strPtr("https://cdn.rapatku.id/proofs/m2.jpg")

	agg, err := AggregateDay(client, day(5), []meetingModel.MeetingModel{
		meeting(5, 4, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusCancelled),
	}, 30_000)
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}
	if agg.GrossAmountIDR != 100_000 {
		t.Errorf("gross = %d, ingin 100000", agg.GrossAmountIDR)
	}
}

func TestAggregateDayEmptyProofString(t *testing.T) {
	// Bukti string kosong = tidak ada bukti
	client := &clientModel.ClientModel{ClientRateDomesticIDR: 25_000}

	agg, err := AggregateDay(client, day(5), []meetingModel.MeetingModel{
		meeting(5, 4, meetingModel.MeetingCategoryDomestic, strPtr(""), meetingModel.MeetingStatusActive),
	}, 30_000)
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}
	if agg.GrossAmountIDR != 0 || agg.MeetingCount != 0 {
		t.Errorf("gross=%d count=%d, ingin 0/0", agg.GrossAmountIDR, agg.MeetingCount)
	}
}

func TestAggregateDayZeroMembers(t *testing.T) {
	// Meeting kosong sah: tercatat tapi tidak menambah nominal
	client := &clientModel.ClientModel{ClientRateDomesticIDR: 25_000}
	proof := strPtr("https://cdn.rapatku.id/proofs/m3.jpg")

	agg, err := AggregateDay(client, day(5), []meetingModel.MeetingModel{
		meeting(5, 0, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusActive),
	}, 30_000)
	if err != nil {
		t.Fatalf("AggregateDay error: %v", err)
	}
	if agg.GrossAmountIDR != 0 {
		t.Errorf("gross = %d, ingin 0", agg.GrossAmountIDR)
	}
	if agg.MeetingCount != 1 {
		t.Errorf("meeting_count = %d, ingin 1", agg.MeetingCount)
	}
}

func TestAggregateDayDeterministic(t *testing.T) {
	client := &clientModel.ClientModel{ClientRateDomesticIDR: 25_000}
	proof := strPtr("https://cdn.rapatku.id/proofs/m4.jpg")
	meetings := []meetingModel.MeetingModel{
		meeting(5, 3, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusActive),
		meeting(5, 7, meetingModel.MeetingCategoryDomestic, proof, meetingModel.MeetingStatusActive),
	}

	first, err := AggregateDay(client, day(5), meetings, 30_000)
	if err != nil {
		t.Fatal(err)
	}
	second, err := AggregateDay(client, day(5), meetings, 30_000)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("hasil tidak deterministik: %+v vs %+v", first, second)
	}
}
