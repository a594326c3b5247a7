package services

import (
	"context"
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// AnalyticsService derives trend views over the ledger. Days with no log row
// count as zeros so a skipped day drags the averages down instead of
// disappearing.
type AnalyticsService struct {
	db   *gorm.DB
	meds *MedicationService
}

func NewAnalyticsService(db *gorm.DB, meds *MedicationService) *AnalyticsService {
	return &AnalyticsService{db: db, meds: meds}
}

type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type DayMetrics struct {
	Date    string            `json:"date"`
	Metrics map[string]Metric `json:"metrics"`
}

type WeeklyOverview struct {
	WeekStart string       `json:"week_start"`
	Days      []DayMetrics `json:"days"`
}

// WeeklyOverview reports seven days of water/meals/exercise/sleep against the
// user's targets, starting at weekStart's local date.
func (s *AnalyticsService) WeeklyOverview(ctx context.Context, userID uint, weekStart time.Time) (*WeeklyOverview, error) {
	from := localDateKey(weekStart)
	to := localDateKey(weekStart.AddDate(0, 0, 6))

	var rows []models.HealthLog
	if err := s.db.WithContext(ctx).
		Preload("Meals").
		Preload("Exercises").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]*models.HealthLog{}
	for i := range rows {
		idx[rows[i].Date] = &rows[i]
	}

	goal, err := s.goalSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &WeeklyOverview{WeekStart: from}
	for i := 0; i < 7; i++ {
		key := localDateKey(weekStart.AddDate(0, 0, i))
		var totals DailyTotals
		if logRow, ok := idx[key]; ok {
			totals = totalsFor(logRow)
		}
		out.Days = append(out.Days, DayMetrics{
			Date: key,
			Metrics: map[string]Metric{
				"water_ml":         metric(float64(totals.Water), float64(goal.WaterML)),
				"meals":            metric(float64(totals.Meals), float64(goal.Meals)),
				"exercise_minutes": metric(float64(totals.Exercise), float64(goal.ExerciseMinutes)),
				"sleep_hours":      metric(totals.Sleep, goal.SleepHours),
			},
		})
	}
	return out, nil
}

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`
	DaysCounted int                `json:"days_counted"`
	Averages    map[string]float64 `json:"averages"` // per-day means over the range
	Adherence   AdherenceStats     `json:"adherence"`
}

// Summary averages the ledger metrics over [from, to] and attaches today's
// medication adherence.
func (s *AnalyticsService) Summary(ctx context.Context, userID uint, from, to time.Time) (*AnalyticsSummary, error) {
	fromKey := localDateKey(from)
	toKey := localDateKey(to)

	var rows []models.HealthLog
	if err := s.db.WithContext(ctx).
		Preload("Meals").
		Preload("Exercises").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, fromKey, toKey).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]*models.HealthLog{}
	for i := range rows {
		idx[rows[i].Date] = &rows[i]
	}

	var water, meals, exercise, sleep float64
	days := 0
	for d := from; !localDateKeyAfter(localDateKey(d), toKey); d = d.AddDate(0, 0, 1) {
		days++
		if logRow, ok := idx[localDateKey(d)]; ok {
			totals := totalsFor(logRow)
			water += float64(totals.Water)
			meals += float64(totals.Meals)
			exercise += float64(totals.Exercise)
			sleep += totals.Sleep
		}
	}

	out := &AnalyticsSummary{DaysCounted: days}
	out.Range.From = fromKey
	out.Range.To = toKey
	out.Averages = map[string]float64{
		"water_ml":         avg(water, days),
		"meals":            avg(meals, days),
		"exercise_minutes": avg(exercise, days),
		"sleep_hours":      avg(sleep, days),
	}

	if s.meds != nil {
		stats, err := s.meds.AdherenceStats(userID)
		if err != nil {
			return nil, err
		}
		out.Adherence = stats
	}
	return out, nil
}

func (s *AnalyticsService) goalSnapshot(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var g models.DailyGoal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := models.DefaultDailyGoal(userID)
			return &def, nil
		}
		return nil, err
	}
	return &g, nil
}

func metric(actual, target float64) Metric {
	return Metric{Actual: round2(actual), Target: round2(target), Percent: pctOf(actual, target)}
}

func pctOf(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func localDateKeyAfter(a, b string) bool { return a > b }
