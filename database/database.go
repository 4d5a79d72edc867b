package database

import (
	"os"

	"notices-app/internal/domain/catalog"
	"notices-app/internal/domain/media"
	"notices-app/internal/domain/users"
	"notices-app/internal/platform/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		logger.L().Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	DB = db

	if err := Migrate(DB); err != nil {
		logger.L().Fatal("AutoMigrate error", zap.Error(err))
	}

	logger.L().Info("Connected and migrated successfully")
}

// Migrate is split out so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// core
		&users.User{},

		// media
		&media.Image{},

		// catalog
		&catalog.Artist{},
		&catalog.Place{},
		&catalog.Artwork{},
		&catalog.ArtworkArtist{},
		&catalog.ArtworkImage{},
		&catalog.Notice{},
	)
}
