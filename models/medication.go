package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medication carries its own dose history: Taken maps a YYYY-MM-DD date key
// to per-slot booleans positionally aligned with Times. A missing date key or
// a short slice means "not taken" for those slots.
type Medication struct {
	ID        string            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint              `gorm:"index;not null" json:"-"`
	Name      string            `gorm:"not null" json:"name"`
	Dosage    string            `json:"dosage"`                       // e.g. "500 mg"
	Frequency string            `json:"frequency"`                    // free-form, e.g. "daily"
	Times     []string          `gorm:"serializer:json" json:"times"` // "HH:MM", zero-padded 24h
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date,omitempty"`
	Taken     map[string][]bool `gorm:"serializer:json" json:"taken"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

func (m *Medication) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Taken == nil {
		m.Taken = map[string][]bool{}
	}
	return nil
}

// TakenAt reports whether the dose at slot i was taken on the given date.
// Out-of-range access is false, never an error.
func (m *Medication) TakenAt(date string, i int) bool {
	slots := m.Taken[date]
	if i < 0 || i >= len(slots) {
		return false
	}
	return slots[i]
}
