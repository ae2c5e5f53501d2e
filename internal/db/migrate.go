package db

import (
	"tokenfolio/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to the MySQL database.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// Migrate performs automatic migration for the database schema
func Migrate(dsn string) {
	gdb, err := Open(dsn) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = AutoMigrate(gdb)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// AutoMigrate creates or updates the five entity tables.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&domain.User{},
		&domain.Asset{},
		&domain.Compliance{},
		&domain.Transaction{},
		&domain.RegulatoryUpdate{},
	)
}
