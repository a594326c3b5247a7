package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// AlertBus persists alerts and mirrors them to connected websockets. Both
// deps are injected; a nil hub simply skips the broadcast.
type AlertBus struct {
	db *gorm.DB
	rt *RealtimeHub
}

func NewAlertBus(db *gorm.DB, rt *RealtimeHub) *AlertBus {
	return &AlertBus{db: db, rt: rt}
}

func (b *AlertBus) Emit(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = b.db.Create(a).Error

	if b.rt != nil {
		b.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// Recent returns the newest alerts, capped at limit.
func (b *AlertBus) Recent(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := b.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

// MarkAllRead flags every unread alert for the user.
func (b *AlertBus) MarkAllRead(userID uint) error {
	return b.db.Model(&models.Alert{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
