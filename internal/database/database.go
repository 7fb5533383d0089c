package database

import (
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"geomate/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL database and runs migrations.
func Connect(dsn string) *gorm.DB {
	db, err := Open(postgres.Open(dsn))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
	return db
}

// Open opens a gorm connection on any dialector with the shared logger config.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	return gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
}

// Migrate creates the schema and seeds the request type catalogue.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.FriendRequest{}, &models.RequestTypeInfo{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	types := slices.Clone(models.DefaultRequestTypes)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error
	if err != nil {
		return fmt.Errorf("seed request types: %w", err)
	}
	return nil
}
