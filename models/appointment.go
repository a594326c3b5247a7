package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"`                 // HH:MM
	Doctor    string    `json:"doctor"`
	Type      string    `json:"type"` // "Checkup" | "Follow-up" | ...
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
