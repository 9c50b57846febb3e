package database

import (
	"fmt"

	"niddle_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects using the configured driver. Postgres is the production
// target; mysql is supported for deployments that already run one;
// sqlite backs local development and the test suite.
func Open(driver, dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		// TranslateError surfaces unique-index violations as
		// gorm.ErrDuplicatedKey across all three drivers.
		cfg = &gorm.Config{TranslateError: true}
	}

	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	case "mysql":
		return gorm.Open(mysql.Open(dsn), cfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// Migrate applies the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Card{},
		&models.Restaurant{},
		&models.WorkTime{},
		&models.Food{},
		&models.Drink{},
		&models.FavoriteFood{},
		&models.FavoriteRestaurant{},
		&models.Order{},
	)
}
