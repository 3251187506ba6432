package service

import (
	"time"

	clientModel "rapatku_backend/internals/features/billing/clients/model"
	clientService "rapatku_backend/internals/features/billing/clients/service"
	meetingModel "rapatku_backend/internals/features/billing/meetings/model"
	"rapatku_backend/internals/helpers/dbtime"
)

// DayAggregate: hasil murni agregasi satu hari, belum menyentuh deposit
// ataupun manual adjustment.
type DayAggregate struct {
	GrossAmountIDR int
	MeetingCount   int
	MemberCount    int
}

// AggregateDay menghitung gross tagihan satu (client, tanggal) dari daftar
// meeting. Murni: input sama → hasil sama, tidak ada side effect. Persist
// hasilnya urusan pemanggil (lihat Recomputer).
//
// Meeting ikut dihitung hanya kalau ada bukti kehadiran dan statusnya bukan
// not_live. Meeting di tanggal lain diabaikan, jadi aman dipanggil dengan
// hasil query yang lebih lebar.
func AggregateDay(
	client *clientModel.ClientModel,
	date time.Time,
	meetings []meetingModel.MeetingModel,
	defaultPremiumIDR int,
) (DayAggregate, error) {
	var agg DayAggregate

	if client == nil {
		return agg, clientService.ErrClientNotFound
	}

	day := dbtime.DateOnly(date)
	for i := range meetings {
		m := &meetings[i]
		if !dbtime.SameDate(m.MeetingDate, day) {
			continue
		}
		if !m.Billable() {
			continue
		}

		rate, err := clientService.ResolveRate(client, m.MeetingCategory, defaultPremiumIDR)
		if err != nil {
			return DayAggregate{}, err
		}

		agg.GrossAmountIDR += m.MeetingMemberCount * rate
		agg.MeetingCount++
		agg.MemberCount += m.MeetingMemberCount
	}

	if agg.GrossAmountIDR < 0 {
		return DayAggregate{}, ErrNegativeDue
	}
	return agg, nil
}
