package seeds

import (
	"log"

	"gorm.io/gorm"

	users "swaram_backend/internals/seeds/users"
)

// RunAllSeeds is idempotent; safe to call on every boot of a fresh
// environment.
func RunAllSeeds(db *gorm.DB) {
	if err := users.SeedRoles(db); err != nil {
		log.Printf("⚠️ role seed failed: %v", err)
	}
	if err := users.SeedOwnerAccount(db); err != nil {
		log.Printf("⚠️ owner seed failed: %v", err)
	}
}
