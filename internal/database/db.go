package database

import (
	"strings"

	"github.com/stayloop/stayloop/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database named by databaseURL. A postgres:// URL gets
// the PostgreSQL driver; anything else is treated as a SQLite path so the
// server can run without external infrastructure.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		databaseURL = "stayloop.db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	return gorm.Open(dialector, &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Place{},
		&models.Amenity{},
		&models.Review{},
	)
}
