package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthLog is the per-day ledger: exactly one row per (user, date).
type HealthLog struct {
	gorm.Model
	UserID        uint    `gorm:"not null;uniqueIndex:uidx_health_logs_user_date" json:"-"`
	Date          string  `gorm:"not null;uniqueIndex:uidx_health_logs_user_date" json:"date"` // YYYY-MM-DD
	WaterIntakeML int     `json:"water_intake_ml"`
	SleepHours    float64 `json:"sleep_hours"`

	Meals     []MealEntry     `gorm:"foreignKey:HealthLogID;constraint:OnDelete:CASCADE" json:"meals"`
	Exercises []ExerciseEntry `gorm:"foreignKey:HealthLogID;constraint:OnDelete:CASCADE" json:"exercise"`
}

type MealEntry struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	HealthLogID uint      `gorm:"index;not null" json:"-"`
	Name        string    `json:"name"`
	Time        string    `json:"time"` // e.g. "8:30 AM"
	Calories    *int      `json:"calories,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

func (m *MealEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type ExerciseEntry struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	HealthLogID     uint      `gorm:"index;not null" json:"-"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  *int      `json:"calories_burned,omitempty"`
	CreatedAt       time.Time `json:"-"`
}

func (e *ExerciseEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
