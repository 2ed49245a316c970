package infra

import (
	"fmt"

	"shopstock/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, tunes the pool and
// runs AutoMigrate for the full schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates all tables. Shared with cmd/seed and
// integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.StockMovement{},
		&model.Setting{},
	)
}
