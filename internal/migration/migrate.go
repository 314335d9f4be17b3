package migration

import (
	"github.com/lembranca/memorial-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the five application tables. AutoMigrate only
// adds missing tables/columns; it never drops data.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.MemorialProfile{},
		&domain.MemorialPhoto{},
		&domain.MemorialMessage{},
		&domain.Activity{},
	)
}
