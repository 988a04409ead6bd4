package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/faithss/website/internal/fixtures"
	"github.com/faithss/website/internal/models"
)

var conn *gorm.DB

// Init opens the sqlite store at dsn, migrates it and seeds the fixture
// records if the tables are empty.
func Init(dsn string, set *fixtures.Set) error {
	c, err := Open(dsn)
	if err != nil {
		return err
	}
	if err := SeedIfEmpty(c, set); err != nil {
		return err
	}
	conn = c
	log.Println("database ready (sqlite)")
	return nil
}

// Open connects and migrates without seeding.
func Open(dsn string) (*gorm.DB, error) {
	c, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := c.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := c.AutoMigrate(&models.Staff{}, &models.Result{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// Lookups filter on both columns.
	if err := c.Exec("CREATE INDEX IF NOT EXISTS idx_results_admission_pin ON results(admission_id, pin)").Error; err != nil {
		return nil, err
	}
	return c, nil
}

// SeedIfEmpty loads each table from set when that table has no rows.
func SeedIfEmpty(c *gorm.DB, set *fixtures.Set) error {
	if set == nil {
		return nil
	}
	return c.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Staff{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 && len(set.Staff) > 0 {
			rows := clone(set.Staff)
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("seed staff: %w", err)
			}
		}
		if err := tx.Model(&models.Result{}).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 && len(set.Results) > 0 {
			rows := clone(set.Results)
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("seed results: %w", err)
			}
		}
		return nil
	})
}

// Reseed replaces every record with set.
func Reseed(c *gorm.DB, set *fixtures.Set) error {
	err := c.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Staff{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Result{}).Error
	})
	if err != nil {
		return err
	}
	return SeedIfEmpty(c, set)
}

// Create assigns IDs into its argument; the fixture set stays untouched.
func clone[T any](in []T) []T { return append([]T(nil), in...) }

func Conn() *gorm.DB {
	return conn
}

// Use installs c as the package connection. Tests use it to swap stores.
func Use(c *gorm.DB) { conn = c }
