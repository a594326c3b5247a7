package config

import (
	"log"
	"os"

	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// InitDB loads .env (if present), opens the local database file and runs
// migrations. The handle is returned rather than held in a package global so
// services receive their store explicitly.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "health.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := MigrateModels(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	return db
}

// MigrateModels is separate from InitDB so tests can migrate an in-memory DB.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.EmergencyContact{},
		&models.HealthLog{},
		&models.MealEntry{},
		&models.ExerciseEntry{},
		&models.DailyGoal{},
		&models.Medication{},
		&models.Appointment{},
		&models.HealthNote{},
		&models.MoodEntry{},
		&models.ChatMessage{},
		&models.Alert{},
	)
}
