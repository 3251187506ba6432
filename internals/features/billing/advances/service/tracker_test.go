package service

import (
	"testing"

	"github.com/google/uuid"

	"rapatku_backend/internals/features/billing/advances/model"
)

func advance(id byte, remaining int, active bool) model.AdvanceBalanceModel {
	return model.AdvanceBalanceModel{
		AdvanceBalanceID:           uuid.UUID{id},
		AdvanceBalanceRemainingIDR: remaining,
		AdvanceBalanceIsActive:     active,
	}
}

func TestPlanConsumptionCoversGrossFully(t *testing.T) {
	advances := []model.AdvanceBalanceModel{
		advance(1, 200_000, true),
	}

	plan := PlanConsumption(advances, 75_000, 25_000)

	if plan.ConsumedIDR != 75_000 {
		t.Errorf("consumed = %d, ingin 75000", plan.ConsumedIDR)
	}
	if plan.ConsumedMembers != 3 {
		t.Errorf("members = %d, ingin 3", plan.ConsumedMembers)
	}
	if len(plan.Draws) != 1 || plan.Draws[0].AmountIDR != 75_000 {
		t.Errorf("draws = %+v, ingin satu draw 75000", plan.Draws)
	}
}

func TestPlanConsumptionOldestFirstAcrossBalances(t *testing.T) {
	// Daftar sudah urut created_at ASC (kontrak pemanggil): deposit tertua
	// habis duluan, sisanya dari berikutnya.
	advances := []model.AdvanceBalanceModel{
		advance(1, 50_000, true),
		advance(2, 100_000, true),
	}

	plan := PlanConsumption(advances, 80_000, 25_000)

	if plan.ConsumedIDR != 80_000 {
		t.Fatalf("consumed = %d, ingin 80000", plan.ConsumedIDR)
	}
	if len(plan.Draws) != 2 {
		t.Fatalf("draws = %d, ingin 2", len(plan.Draws))
	}
	if plan.Draws[0].AmountIDR != 50_000 {
		t.Errorf("draw tertua = %d, ingin habis 50000", plan.Draws[0].AmountIDR)
	}
	if plan.Draws[1].AmountIDR != 30_000 {
		t.Errorf("draw kedua = %d, ingin 30000", plan.Draws[1].AmountIDR)
	}
}

func TestPlanConsumptionPartialCoverage(t *testing.T) {
	// Saldo kurang dari gross: pakai semua yang ada, sisanya jadi tagihan.
	advances := []model.AdvanceBalanceModel{
		advance(1, 40_000, true),
	}

	plan := PlanConsumption(advances, 100_000, 25_000)

	if plan.ConsumedIDR != 40_000 {
		t.Errorf("consumed = %d, ingin 40000", plan.ConsumedIDR)
	}
	// 40rb / 25rb = 1 member-equivalent (floor)
	if plan.ConsumedMembers != 1 {
		t.Errorf("members = %d, ingin 1", plan.ConsumedMembers)
	}
}

func TestPlanConsumptionSkipsInactiveAndEmpty(t *testing.T) {
	advances := []model.AdvanceBalanceModel{
		advance(1, 100_000, false), // nonaktif
		advance(2, 0, true),        // habis
		advance(3, 60_000, true),
	}

	plan := PlanConsumption(advances, 50_000, 25_000)

	if len(plan.Draws) != 1 || plan.Draws[0].AdvanceID != (uuid.UUID{3}) {
		t.Fatalf("draws = %+v, ingin hanya dari deposit ketiga", plan.Draws)
	}
	if plan.ConsumedIDR != 50_000 {
		t.Errorf("consumed = %d, ingin 50000", plan.ConsumedIDR)
	}
}

func TestPlanConsumptionZeroGross(t *testing.T) {
	advances := []model.AdvanceBalanceModel{
		advance(1, 100_000, true),
	}

	plan := PlanConsumption(advances, 0, 25_000)

	if plan.ConsumedIDR != 0 || len(plan.Draws) != 0 {
		t.Errorf("plan = %+v, ingin kosong", plan)
	}
}

func TestPlanConsumptionZeroRate(t *testing.T) {
	// Rate 0 (data rusak): jangan panic, member-equivalent 0 saja.
	advances := []model.AdvanceBalanceModel{
		advance(1, 100_000, true),
	}

	plan := PlanConsumption(advances, 50_000, 0)

	if plan.ConsumedIDR != 50_000 {
		t.Errorf("consumed = %d, ingin 50000", plan.ConsumedIDR)
	}
	if plan.ConsumedMembers != 0 {
		t.Errorf("members = %d, ingin 0", plan.ConsumedMembers)
	}
}
