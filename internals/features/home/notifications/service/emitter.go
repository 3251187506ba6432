package service

import (
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"rapatku_backend/internals/features/home/notifications/model"
)

// Emitter menulis notifikasi in-app. Fire-and-forget: dipakai sebagai
// sink dari lifecycle pembayaran, jadi errornya ditelan (cukup di-log)
// supaya gagal insert notifikasi tidak membatalkan transisi pembayaran.
//
// DB sengaja koneksi root, bukan transaksi pemanggil: notifikasi baru
// ditulis setelah mutasi utama sukses, dan boleh hilang kalau insertnya
// sendiri gagal.
type Emitter struct {
	DB   *gorm.DB
	Tags []string
}

func NewEmitter(db *gorm.DB) *Emitter {
	return &Emitter{DB: db, Tags: []string{"billing"}}
}

func (e *Emitter) Emit(userID *uuid.UUID, title, message string, notifType int) {
	if e == nil || e.DB == nil {
		return
	}
	n := model.NotificationModel{
		NotificationUserID:      userID,
		NotificationTitle:       title,
		NotificationDescription: message,
		NotificationType:        notifType,
		NotificationTags:        pq.StringArray(e.Tags),
	}
	if err := e.DB.Create(&n).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan notifikasi:", err)
	}
}
