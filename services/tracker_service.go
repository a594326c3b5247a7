package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// TrackerService owns the per-day health ledger: one HealthLog row per
// (user, local calendar date), lazily created on first access and mutated
// throughout the day.
type TrackerService struct {
	db     *gorm.DB
	alerts *AlertBus
}

func NewTrackerService(db *gorm.DB, alerts *AlertBus) *TrackerService {
	return &TrackerService{db: db, alerts: alerts}
}

// localDateKey formats t as the ledger's YYYY-MM-DD date key in local time.
func localDateKey(t time.Time) string {
	return t.In(time.Local).Format("2006-01-02")
}

// GetOrCreateTodayLog returns today's log, constructing a zero-valued one the
// first time it is touched on a given day.
func (s *TrackerService) GetOrCreateTodayLog(userID uint) (*models.HealthLog, error) {
	return s.getOrCreateLog(userID, localDateKey(time.Now()))
}

func (s *TrackerService) getOrCreateLog(userID uint, date string) (*models.HealthLog, error) {
	var logRow models.HealthLog
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ? AND date = ?", userID, date).
		First(&logRow).Error
	if err == nil {
		return &logRow, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	logRow = models.HealthLog{UserID: userID, Date: date}
	if err := s.db.Create(&logRow).Error; err != nil {
		return nil, err
	}
	return &logRow, nil
}

// AddWater adds deltaML (may be negative) to today's intake, clamped at zero.
func (s *TrackerService) AddWater(userID uint, deltaML int) (*models.HealthLog, error) {
	logRow, err := s.GetOrCreateTodayLog(userID)
	if err != nil {
		return nil, err
	}

	prev := logRow.WaterIntakeML
	next := prev + deltaML
	if next < 0 {
		next = 0
	}
	logRow.WaterIntakeML = next
	if err := s.db.Model(logRow).Update("water_intake_ml", next).Error; err != nil {
		return nil, err
	}

	if s.alerts != nil {
		if goal := s.waterGoal(userID); goal > 0 && prev < goal && next >= goal {
			s.alerts.Emit(userID, "info", "Daily water goal reached, nice work!")
		}
	}
	return logRow, nil
}

func (s *TrackerService) waterGoal(userID uint) int {
	var goal models.DailyGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return models.DefaultWaterGoalML
	}
	return goal.WaterML
}

// AddMeal appends a meal entry to today's log. Omitted fields fall back to a
// placeholder name and the current wall-clock time.
func (s *TrackerService) AddMeal(userID uint, name, mealTime string, calories *int) (*models.MealEntry, error) {
	logRow, err := s.GetOrCreateTodayLog(userID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = "Meal"
	}
	if mealTime == "" {
		mealTime = time.Now().Format("3:04 PM")
	}

	entry := models.MealEntry{
		HealthLogID: logRow.ID,
		Name:        name,
		Time:        mealTime,
		Calories:    calories,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddExercise appends an exercise entry to today's log.
func (s *TrackerService) AddExercise(userID uint, exType string, durationMinutes int, caloriesBurned *int) (*models.ExerciseEntry, error) {
	logRow, err := s.GetOrCreateTodayLog(userID)
	if err != nil {
		return nil, err
	}

	if exType == "" {
		exType = "Exercise"
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	entry := models.ExerciseEntry{
		HealthLogID:     logRow.ID,
		Type:            exType,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateSleepHours sets today's sleep to max(0, hours). Absolute set, not
// additive.
func (s *TrackerService) UpdateSleepHours(userID uint, hours float64) (*models.HealthLog, error) {
	logRow, err := s.GetOrCreateTodayLog(userID)
	if err != nil {
		return nil, err
	}

	if hours < 0 {
		hours = 0
	}
	logRow.SleepHours = hours
	if err := s.db.Model(logRow).Update("sleep_hours", hours).Error; err != nil {
		return nil, err
	}
	return logRow, nil
}

type DailyTotals struct {
	Water    int     `json:"water"`    // ml
	Meals    int     `json:"meals"`    // count
	Exercise int     `json:"exercise"` // minutes
	Sleep    float64 `json:"sleep"`    // hours
}

// GetDailyTotals derives today's totals from the log. Pure read.
func (s *TrackerService) GetDailyTotals(userID uint) (DailyTotals, error) {
	logRow, err := s.GetOrCreateTodayLog(userID)
	if err != nil {
		return DailyTotals{}, err
	}
	return totalsFor(logRow), nil
}

func totalsFor(logRow *models.HealthLog) DailyTotals {
	t := DailyTotals{
		Water: logRow.WaterIntakeML,
		Meals: len(logRow.Meals),
		Sleep: logRow.SleepHours,
	}
	for _, ex := range logRow.Exercises {
		t.Exercise += ex.DurationMinutes
	}
	return t
}

// GetHistory returns all of the user's logs, newest first. Past days are
// read-only; every mutation above targets today's row.
func (s *TrackerService) GetHistory(userID uint) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	err := s.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}
