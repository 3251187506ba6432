package seeds

import (
	"gorm.io/gorm"

	clients "rapatku_backend/internals/seeds/clients"
)

func RunAllSeeds(db *gorm.DB) {
	//* Billing
	clients.SeedClientsFromJSON(db, "internals/seeds/clients/data_clients.json")
}
