package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily tracking targets.
type DailyGoal struct {
	gorm.Model
	UserID          uint    `gorm:"uniqueIndex;not null" json:"-"`
	WaterML         int     `json:"water_ml"`         // e.g. 2000 ml
	Meals           int     `json:"meals"`            // e.g. 3 meals
	ExerciseMinutes int     `json:"exercise_minutes"` // e.g. 60 minutes
	SleepHours      float64 `json:"sleep_hours"`      // e.g. 8 hours
}

// Targets the app starts with before the user customises anything.
const (
	DefaultWaterGoalML                 = 2000
	DefaultMealsGoal                   = 3
	DefaultExerciseGoalMinutes         = 60
	DefaultSleepGoalHours      float64 = 8
)

func DefaultDailyGoal(userID uint) DailyGoal {
	return DailyGoal{
		UserID:          userID,
		WaterML:         DefaultWaterGoalML,
		Meals:           DefaultMealsGoal,
		ExerciseMinutes: DefaultExerciseGoalMinutes,
		SleepHours:      DefaultSleepGoalHours,
	}
}
