package db

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	connectAttempts = 5
	connectBackoff  = 5 * time.Second
)

// Connect opens the database from DB_DSN. The database container may come up
// after the API does, so the connection is retried a bounded number of times
// with a fixed backoff before startup is aborted.
func Connect() (*gorm.DB, error) {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := os.Getenv("DB_DSN")

	var database *gorm.DB
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		database, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			if err = Ping(database); err == nil {
				log.Println("AstroLog DB connected successfully!")
				return database, nil
			}
		}
		log.Printf("Could not connect to database (attempt %d/%d): %v\n", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}

	return nil, err
}

// Ping checks storage connectivity over the underlying sql.DB handle
func Ping(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
