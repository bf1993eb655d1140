package database

import (
	"onboarding-app/config"
	"onboarding-app/internal/domain/admins"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/catalog"
	"onboarding-app/internal/domain/settings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal().Msg("DB_URL not set")
	}

	gormLog := logger.Default.LogMode(logger.Warn)
	if config.IsProduction() {
		gormLog = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate error")
	}

	DB = db
	log.Info().Msg("Connected and migrated successfully")
}

// Migrate creates or updates every onboarding table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// applicants
		&artists.Artist{},

		// catalog
		&catalog.Artwork{},
		&catalog.ProductVariant{},

		// per-artist settings
		&settings.Pricing{},
		&settings.RetailPrice{},
		&settings.Shipping{},
		&settings.Marketing{},
		&settings.OrderSettings{},

		// back office
		&admins.Admin{},
	)
}
