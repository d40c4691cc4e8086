package infra

import (
	"fmt"

	"stockbook/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update the three catalog tables, then applies idempotent SQL
// patches that GORM cannot express (the case-insensitive unique name indexes).
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

	if err := db.AutoMigrate(
		&model.Type{},
		&model.Brand{},
		&model.Product{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL statements that GORM AutoMigrate
// cannot fully handle on its own. Name uniqueness for brands and types is
// case-insensitive-on-trimmed-value, which needs a functional index rather
// than a plain uniqueIndex tag. Each statement uses IF NOT EXISTS semantics
// so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_types_name_ci ON types (lower(trim(name)))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_brands_name_ci ON brands (lower(trim(name)))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_products_name_ci ON products (lower(trim(product_name)))`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql, err)
		}
	}
	return nil
}

// RunMigrations applies the schema for integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Type{},
		&model.Brand{},
		&model.Product{},
	); err != nil {
		return err
	}
	return applySchemaPatches(db)
}
