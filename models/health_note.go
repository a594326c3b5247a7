package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthNote struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Date      string    `gorm:"not null" json:"date"`
	Title     string    `json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt time.Time `json:"-"`
}

func (n *HealthNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
