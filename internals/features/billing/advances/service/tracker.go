package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rapatku_backend/internals/features/billing/advances/model"
	"rapatku_backend/internals/helpers/dbtime"
)

/* ===================== Perencanaan (murni) ===================== */

// AdvanceDraw: berapa yang diambil dari satu baris deposit.
type AdvanceDraw struct {
	AdvanceID uuid.UUID
	AmountIDR int
}

// ConsumptionPlan: rencana pemakaian deposit untuk satu gross tagihan.
type ConsumptionPlan struct {
	ConsumedIDR     int
	ConsumedMembers int
	Draws           []AdvanceDraw
}

// PlanConsumption menyusun rencana pemakaian deposit: total yang dipakai =
// min(gross, total sisa aktif), diambil berurutan dari deposit tertua.
// Murni — eksekusinya di ApplyAdvance. Caller cuma melihat agregatnya,
// urutan antar baris deposit bukan kontrak.
func PlanConsumption(advances []model.AdvanceBalanceModel, grossIDR int, ratePerMemberIDR int) ConsumptionPlan {
	var plan ConsumptionPlan
	if grossIDR <= 0 {
		return plan
	}

	need := grossIDR
	for i := range advances {
		a := &advances[i]
		if !a.AdvanceBalanceIsActive || a.AdvanceBalanceRemainingIDR <= 0 {
			continue
		}
		take := a.AdvanceBalanceRemainingIDR
		if take > need {
			take = need
		}
		plan.Draws = append(plan.Draws, AdvanceDraw{
			AdvanceID: a.AdvanceBalanceID,
			AmountIDR: take,
		})
		plan.ConsumedIDR += take
		need -= take
		if need == 0 {
			break
		}
	}

	if ratePerMemberIDR > 0 {
		plan.ConsumedMembers = plan.ConsumedIDR / ratePerMemberIDR
	}
	return plan
}

/* ===================== Eksekusi (transaksional) ===================== */

// ApplyAdvance: satu-satunya titik decrement saldo deposit.
//
// Idempoten per (client, tanggal): ledger advance_consumptions unique di
// kombinasi itu. Kalau sudah ada baris ledger, pemakaian lama yang dipakai
// ulang — tidak pernah double-consume. Baris deposit dikunci FOR UPDATE di
// dalam tx pemanggil supaya dua recompute client yang sama tidak balapan.
//
// Return: nominal deposit yang (sudah/baru) dipakai untuk tanggal ini.
func ApplyAdvance(tx *gorm.DB, clientID uuid.UUID, date time.Time, grossIDR int, ratePerMemberIDR int) (int, error) {
	day := dbtime.DateOnly(date)

	// 1) Sudah pernah dikonsumsi? Pakai nilai ledger, jangan hitung ulang.
	var existing model.AdvanceConsumptionModel
	err := tx.
		Where("advance_consumption_client_id = ? AND advance_consumption_date = ?", clientID, day).
		First(&existing).Error
	if err == nil {
		return existing.AdvanceConsumptionAmountIDR, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if grossIDR <= 0 {
		return 0, nil
	}

	// 2) Kunci baris deposit aktif (serialisasi per client).
	var advances []model.AdvanceBalanceModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("advance_balance_client_id = ? AND advance_balance_is_active = TRUE AND advance_balance_remaining_idr > 0", clientID).
		Order("advance_balance_created_at ASC").
		Find(&advances).Error; err != nil {
		return 0, err
	}

	plan := PlanConsumption(advances, grossIDR, ratePerMemberIDR)
	if plan.ConsumedIDR == 0 {
		return 0, nil
	}

	// 3) Catat ledger dulu. ON CONFLICT DO NOTHING: kalau ada penulis lain
	//    yang menang di antara step 1 dan sekarang, kita kalah balapan.
	ledger := model.AdvanceConsumptionModel{
		AdvanceConsumptionClientID:  clientID,
		AdvanceConsumptionDate:      day,
		AdvanceConsumptionAmountIDR: plan.ConsumedIDR,
		AdvanceConsumptionMembers:   plan.ConsumedMembers,
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ledger)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrAdvanceConflict
	}

	// 4) Decrement tiap baris deposit sesuai rencana; guard remaining >= x
	//    supaya saldo tidak pernah negatif walau ada penulis liar.
	for _, d := range plan.Draws {
		memberDec := 0
		if ratePerMemberIDR > 0 {
			memberDec = d.AmountIDR / ratePerMemberIDR
		}
		r := tx.Model(&model.AdvanceBalanceModel{}).
			Where("advance_balance_id = ? AND advance_balance_remaining_idr >= ?", d.AdvanceID, d.AmountIDR).
			Updates(map[string]any{
				"advance_balance_remaining_idr":     gorm.Expr("advance_balance_remaining_idr - ?", d.AmountIDR),
				"advance_balance_remaining_members": gorm.Expr("GREATEST(advance_balance_remaining_members - ?, 0)", memberDec),
			})
		if r.Error != nil {
			return 0, r.Error
		}
		if r.RowsAffected == 0 {
			return 0, ErrAdvanceConflict
		}
	}

	return plan.ConsumedIDR, nil
}

// RemainingTotal: total sisa deposit aktif satu client.
func RemainingTotal(tx *gorm.DB, clientID uuid.UUID) (int, error) {
	var total int64
	err := tx.Model(&model.AdvanceBalanceModel{}).
		Where("advance_balance_client_id = ? AND advance_balance_is_active = TRUE", clientID).
		Select("COALESCE(SUM(advance_balance_remaining_idr), 0)").
		Scan(&total).Error
	return int(total), err
}
