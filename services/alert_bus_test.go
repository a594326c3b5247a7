package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitPersistsAlertWithoutHub(t *testing.T) {
	db := newTestDB(t)
	bus := NewAlertBus(db, nil)

	bus.Emit(1, "info", "Daily water goal reached")

	alerts, err := bus.Recent(1, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "info", alerts[0].Type)
	assert.False(t, alerts[0].Read)
}

func TestRecentCapsAndOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	bus := NewAlertBus(db, nil)

	for i := 0; i < 5; i++ {
		bus.Emit(1, "info", "event")
	}
	bus.Emit(2, "info", "someone else")

	alerts, err := bus.Recent(1, 3)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)
	for i := 1; i < len(alerts); i++ {
		assert.False(t, alerts[i].CreatedAt.After(alerts[i-1].CreatedAt))
	}
}

func TestMarkAllReadFlagsOnlyThatUser(t *testing.T) {
	db := newTestDB(t)
	bus := NewAlertBus(db, nil)

	bus.Emit(1, "info", "mine")
	bus.Emit(2, "info", "theirs")

	require.NoError(t, bus.MarkAllRead(1))

	var unreadMine, unreadTheirs int64
	require.NoError(t, db.Model(&models.Alert{}).Where("user_id = ? AND read = ?", 1, false).Count(&unreadMine).Error)
	require.NoError(t, db.Model(&models.Alert{}).Where("user_id = ? AND read = ?", 2, false).Count(&unreadTheirs).Error)
	assert.Zero(t, unreadMine)
	assert.EqualValues(t, 1, unreadTheirs)
}

func TestWaterGoalCrossingEmitsOneAlert(t *testing.T) {
	db := newTestDB(t)
	bus := NewAlertBus(db, nil)
	tracker := NewTrackerService(db, bus)

	_, err := tracker.AddWater(1, 1900)
	require.NoError(t, err)
	_, err = tracker.AddWater(1, 200) // crosses the 2000 ml default
	require.NoError(t, err)
	_, err = tracker.AddWater(1, 300) // already past it, no second alert
	require.NoError(t, err)

	alerts, err := bus.Recent(1, 10)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}
