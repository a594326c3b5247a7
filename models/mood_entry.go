package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mood scale runs 1 (terrible) through 6 (excellent).
const (
	MoodMin = 1
	MoodMax = 6
)

type MoodEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Date      string    `gorm:"not null" json:"date"`
	Mood      int       `gorm:"not null" json:"mood"`
	Notes     string    `json:"notes,omitempty"`
	Factors   []string  `gorm:"serializer:json" json:"factors"`
	CreatedAt time.Time `json:"-"`
}

func (e *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
