package repository

import (
	"fmt"

	"github.com/hpitta26/Leetcode-Bot/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database file, creating it if absent.
// Foreign keys are enforced so a submission referencing an unknown
// problem or competition fails instead of persisting silently. The pool
// is capped at one connection: access is single-threaded and the pragma
// then holds for every statement.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates the tables if they don't exist. Safe to call on every
// startup; existing data is untouched. Order matters: submissions
// reference the other three tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Competition{},
		&models.User{},
		&models.Problem{},
		&models.Submission{},
	)
}

// Close releases the underlying connection. Callers defer this after all
// work completes, on success and failure paths alike.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
