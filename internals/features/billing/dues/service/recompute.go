package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	advanceService "rapatku_backend/internals/features/billing/advances/service"
	clientModel "rapatku_backend/internals/features/billing/clients/model"
	clientService "rapatku_backend/internals/features/billing/clients/service"
	meetingModel "rapatku_backend/internals/features/billing/meetings/model"
	"rapatku_backend/internals/features/billing/dues/model"
	"rapatku_backend/internals/helpers/dbtime"
)

// Recomputer: jembatan antara agregator murni dan storage. Model kerjanya
// "invalidate & recompute": setiap mutasi meeting memanggil RecomputeDay
// untuk (client, tanggal) yang kena, baris daily_dues ditulis ulang utuh.
// Last writer wins — nilainya selalu bisa direproduksi, jadi aman.
type Recomputer struct {
	DB                *gorm.DB
	DefaultPremiumIDR int
}

func NewRecomputer(db *gorm.DB, defaultPremiumIDR int) *Recomputer {
	return &Recomputer{DB: db, DefaultPremiumIDR: defaultPremiumIDR}
}

// RecomputeDay hitung ulang tagihan satu (client, tanggal) dari nol.
// Konflik pemakaian deposit di-retry sekali; kalau masih konflik,
// ErrAdvanceConflict diteruskan ke caller sebagai error transient.
func (r *Recomputer) RecomputeDay(ctx context.Context, clientID uuid.UUID, date time.Time) (*model.DailyDueModel, error) {
	due, err := r.recomputeOnce(ctx, clientID, date)
	if errors.Is(err, advanceService.ErrAdvanceConflict) {
		log.Printf("[WARN] recompute %s %s: konflik deposit, retry sekali", clientID, dbtime.DateOnly(date).Format("2006-01-02"))
		due, err = r.recomputeOnce(ctx, clientID, date)
	}
	return due, err
}

func (r *Recomputer) recomputeOnce(ctx context.Context, clientID uuid.UUID, date time.Time) (*model.DailyDueModel, error) {
	day := dbtime.DateOnly(date)
	var out *model.DailyDueModel

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Client + tarif
		var client clientModel.ClientModel
		if err := tx.Where("client_id = ?", clientID).First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return clientService.ErrClientNotFound
			}
			return err
		}

		// 2) Meeting di tanggal itu
		var meetings []meetingModel.MeetingModel
		if err := tx.
			Where("meeting_client_id = ? AND meeting_date = ?", clientID, day).
			Find(&meetings).Error; err != nil {
			return err
		}

		// 3) Agregasi murni
		agg, err := AggregateDay(&client, day, meetings, r.DefaultPremiumIDR)
		if err != nil {
			return err
		}

		// 4) Baris lama (manual adjustment dipertahankan)
		manual := 0
		var existing model.DailyDueModel
		found := true
		if err := tx.
			Where("daily_due_client_id = ? AND daily_due_date = ?", clientID, day).
			First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		} else {
			manual = existing.DailyDueManualAmountIDR
		}

		// 5) Deposit (idempoten per client+tanggal)
		consumed, err := advanceService.ApplyAdvance(tx, clientID, day, agg.GrossAmountIDR, client.ClientRateDomesticIDR)
		if err != nil {
			return err
		}
		advanceAdj := consumed
		if advanceAdj > agg.GrossAmountIDR {
			// gross menyusut setelah deposit terlanjur dipakai (meeting
			// dihapus belakangan); deposit tidak di-refund otomatis,
			// tapi amount tetap tidak boleh negatif.
			advanceAdj = agg.GrossAmountIDR
		}

		amount := agg.GrossAmountIDR - advanceAdj + manual
		if amount < 0 {
			log.Printf("[ERROR] recompute %s %s: amount negatif (gross=%d advance=%d manual=%d)",
				clientID, day.Format("2006-01-02"), agg.GrossAmountIDR, advanceAdj, manual)
			return ErrNegativeDue
		}

		// 6) Hari kosong tanpa adjustment → baris due tidak perlu ada
		if agg.GrossAmountIDR == 0 && agg.MeetingCount == 0 && manual == 0 && consumed == 0 {
			if found {
				if err := tx.Delete(&existing).Error; err != nil {
					return err
				}
			}
			out = nil
			return nil
		}

		// 7) Upsert utuh
		due := model.DailyDueModel{
			DailyDueClientID:         clientID,
			DailyDueDate:             day,
			DailyDueGrossAmountIDR:   agg.GrossAmountIDR,
			DailyDueAdvanceAmountIDR: advanceAdj,
			DailyDueManualAmountIDR:  manual,
			DailyDueAmountIDR:        amount,
			DailyDueMeetingCount:     agg.MeetingCount,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "daily_due_client_id"}, {Name: "daily_due_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"daily_due_gross_amount_idr",
				"daily_due_advance_amount_idr",
				"daily_due_manual_amount_idr",
				"daily_due_amount_idr",
				"daily_due_meeting_count",
			}),
		}).Create(&due).Error; err != nil {
			return err
		}

		out = &due
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetManualAdjustment: surcharge/kredit manual dari admin untuk satu
// tanggal. Ditolak kalau hasil akhirnya bikin amount negatif.
func (r *Recomputer) SetManualAdjustment(ctx context.Context, clientID uuid.UUID, date time.Time, adjustmentIDR int) (*model.DailyDueModel, error) {
	day := dbtime.DateOnly(date)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.DailyDueModel
		err := tx.
			Where("daily_due_client_id = ? AND daily_due_date = ?", clientID, day).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum ada aktivitas: surcharge boleh bikin baris baru,
			// kredit di hari kosong tidak ada artinya.
			if adjustmentIDR < 0 {
				return ErrManualAdjustmentInvalid
			}
			if adjustmentIDR == 0 {
				return nil
			}
			due := model.DailyDueModel{
				DailyDueClientID:        clientID,
				DailyDueDate:            day,
				DailyDueManualAmountIDR: adjustmentIDR,
				DailyDueAmountIDR:       adjustmentIDR,
			}
			return tx.Create(&due).Error
		}
		if err != nil {
			return err
		}

		amount := existing.DailyDueGrossAmountIDR - existing.DailyDueAdvanceAmountIDR + adjustmentIDR
		if amount < 0 {
			return ErrManualAdjustmentInvalid
		}
		return tx.Model(&existing).Updates(map[string]any{
			"daily_due_manual_amount_idr": adjustmentIDR,
			"daily_due_amount_idr":        amount,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	// Baca ulang hasil final untuk response
	return r.RecomputeDay(ctx, clientID, day)
}
