package clients

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"rapatku_backend/internals/features/billing/clients/model"
)

type ClientSeed struct {
	ClientName            string  `json:"client_name"`
	ClientRateDomesticIDR int     `json:"client_rate_domestic_idr"`
	ClientRateForeignIDR  *int    `json:"client_rate_foreign_idr,omitempty"`
	ClientRatePremiumIDR  *int    `json:"client_rate_premium_idr,omitempty"`
	ClientNote            *string `json:"client_note,omitempty"`
}

// SeedClientsFromJSON isi data client demo/dev. Idempoten per nama:
// client yang sudah ada dilewati.
func SeedClientsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file client:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []ClientSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.ClientModel
		if err := db.Where("client_name = ?", data.ClientName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Client '%s' sudah ada, dilewati.", data.ClientName)
			continue
		}

		newClient := model.ClientModel{
			ClientName:            data.ClientName,
			ClientRateDomesticIDR: data.ClientRateDomesticIDR,
			ClientRateForeignIDR:  data.ClientRateForeignIDR,
			ClientRatePremiumIDR:  data.ClientRatePremiumIDR,
			ClientIsActive:        true,
			ClientNote:            data.ClientNote,
		}
		if err := db.Create(&newClient).Error; err != nil {
			log.Printf("❌ Gagal menyimpan client '%s': %v", data.ClientName, err)
			continue
		}
		log.Printf("✅ Client '%s' berhasil dibuat.", data.ClientName)
	}
}
