package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

// DailyGoalService owns the per-user tracking targets and joins them with the
// ledger's totals into a progress view.
type DailyGoalService struct {
	db      *gorm.DB
	tracker *TrackerService
}

func NewDailyGoalService(db *gorm.DB, tracker *TrackerService) *DailyGoalService {
	return &DailyGoalService{db: db, tracker: tracker}
}

func (s *DailyGoalService) getOrDefault(userID uint) (models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultDailyGoal(userID), nil
		}
		return models.DailyGoal{}, err
	}
	return goal, nil
}

// UpsertGoals replaces the user's targets, creating the row on first write.
func (s *DailyGoalService) UpsertGoals(userID uint, waterML, meals, exerciseMinutes int, sleepHours float64) error {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:          userID,
			WaterML:         waterML,
			Meals:           meals,
			ExerciseMinutes: exerciseMinutes,
			SleepHours:      sleepHours,
		}
		return s.db.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.WaterML = waterML
	goal.Meals = meals
	goal.ExerciseMinutes = exerciseMinutes
	goal.SleepHours = sleepHours
	return s.db.Save(&goal).Error
}

type GoalProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"` // 0..1, capped
}

// GetGoalsAndProgress returns the user's targets alongside today's totals as
// capped fractions.
func (s *DailyGoalService) GetGoalsAndProgress(userID uint) (*models.DailyGoal, map[string]GoalProgress, error) {
	goal, err := s.getOrDefault(userID)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.tracker.GetDailyTotals(userID)
	if err != nil {
		return &goal, nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]GoalProgress{
		"water":    {Consumed: float64(totals.Water), Goal: float64(goal.WaterML), Percent: pct(float64(totals.Water), float64(goal.WaterML))},
		"meals":    {Consumed: float64(totals.Meals), Goal: float64(goal.Meals), Percent: pct(float64(totals.Meals), float64(goal.Meals))},
		"exercise": {Consumed: float64(totals.Exercise), Goal: float64(goal.ExerciseMinutes), Percent: pct(float64(totals.Exercise), float64(goal.ExerciseMinutes))},
		"sleep":    {Consumed: totals.Sleep, Goal: goal.SleepHours, Percent: pct(totals.Sleep, goal.SleepHours)},
	}
	return &goal, progress, nil
}
