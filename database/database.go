package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dicebet/config"
	"dicebet/logger"
	"dicebet/models"
)

// migrations is the static registry of persisted entities. Adding a model
// means adding it here; nothing is discovered at runtime.
var migrations = []any{
	&models.User{},
	&models.Wallet{},
	&models.Bet{},
	&models.Game{},
	&models.WalletTransaction{},
	&models.Session{},
}

// Connect opens the postgres connection and optionally runs migrations.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Log.Infow("connected to database", "host", cfg.DBHost, "db", cfg.DBName)

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(migrations...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Log.Info("auto migration completed")
	}

	return db, nil
}
