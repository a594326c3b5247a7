package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email             string `gorm:"uniqueIndex;not null"`
	Password          string `gorm:"not null"`
	Name              string
	Age               int
	Gender            string // "male" | "female" | "other"
	HeightCm          float64
	WeightKg          float64
	ChronicConditions string // comma-separated
	Allergies         string // comma-separated
	Disabled          bool

	EmergencyContacts []EmergencyContact
}

type EmergencyContact struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uint   `gorm:"index;not null" json:"-"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

func (c *EmergencyContact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
