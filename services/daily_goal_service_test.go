package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsDefaultWhenUnset(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTrackerService(db, nil)
	svc := NewDailyGoalService(db, tracker)

	goal, _, err := svc.GetGoalsAndProgress(1)
	require.NoError(t, err)

	assert.Equal(t, models.DefaultWaterGoalML, goal.WaterML)
	assert.Equal(t, models.DefaultMealsGoal, goal.Meals)
	assert.Equal(t, models.DefaultExerciseGoalMinutes, goal.ExerciseMinutes)
	assert.Equal(t, models.DefaultSleepGoalHours, goal.SleepHours)
}

func TestUpsertGoalsCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTrackerService(db, nil)
	svc := NewDailyGoalService(db, tracker)

	require.NoError(t, svc.UpsertGoals(1, 2500, 4, 45, 7.5))
	require.NoError(t, svc.UpsertGoals(1, 3000, 4, 45, 7.5))

	var count int64
	require.NoError(t, db.Model(&models.DailyGoal{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count, "upsert must not duplicate the goal row")

	goal, _, err := svc.GetGoalsAndProgress(1)
	require.NoError(t, err)
	assert.Equal(t, 3000, goal.WaterML)
}

func TestProgressIsCappedAtOne(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTrackerService(db, nil)
	svc := NewDailyGoalService(db, tracker)

	require.NoError(t, svc.UpsertGoals(1, 500, 3, 60, 8))
	_, err := tracker.AddWater(1, 1200)
	require.NoError(t, err)

	_, progress, err := svc.GetGoalsAndProgress(1)
	require.NoError(t, err)

	water := progress["water"]
	assert.Equal(t, 1200.0, water.Consumed)
	assert.Equal(t, 500.0, water.Goal)
	assert.Equal(t, 1.0, water.Percent)
}

func TestProgressReflectsTodaysTotals(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTrackerService(db, nil)
	svc := NewDailyGoalService(db, tracker)

	_, err := tracker.AddWater(1, 1000)
	require.NoError(t, err)
	_, err = tracker.AddExercise(1, "Walk", 30, nil)
	require.NoError(t, err)

	_, progress, err := svc.GetGoalsAndProgress(1)
	require.NoError(t, err)

	assert.Equal(t, 0.5, progress["water"].Percent)
	assert.Equal(t, 0.5, progress["exercise"].Percent)
	assert.Equal(t, 0.0, progress["meals"].Percent)
}
