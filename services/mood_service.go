package services

import (
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MoodService struct {
	db *gorm.DB
}

func NewMoodService(db *gorm.DB) *MoodService {
	return &MoodService{db: db}
}

type MoodInput struct {
	Mood    int      `json:"mood" binding:"required"`
	Notes   string   `json:"notes"`
	Factors []string `json:"factors"`
}

func (s *MoodService) Add(userID uint, in MoodInput) (*models.MoodEntry, error) {
	if in.Mood < models.MoodMin || in.Mood > models.MoodMax {
		return nil, fmt.Errorf("mood must be between %d and %d", models.MoodMin, models.MoodMax)
	}

	entry := models.MoodEntry{
		UserID:  userID,
		Date:    localDateKey(time.Now()),
		Mood:    in.Mood,
		Notes:   in.Notes,
		Factors: in.Factors,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MoodService) List(userID uint) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

type MoodSummary struct {
	TotalEntries    int     `json:"total_entries"`
	EntriesThisWeek int     `json:"entries_this_week"`
	WeeklyAverage   float64 `json:"weekly_average"` // trailing 7 entries
	TodayMood       int     `json:"today_mood"`     // 0 when not logged today
}

// Summary mirrors the dashboard header: counts, a trailing 7-entry average
// and today's mood if logged.
func (s *MoodService) Summary(userID uint) (MoodSummary, error) {
	entries, err := s.List(userID)
	if err != nil {
		return MoodSummary{}, err
	}

	out := MoodSummary{TotalEntries: len(entries)}

	weekAgo := localDateKey(time.Now().AddDate(0, 0, -7))
	today := localDateKey(time.Now())
	for _, e := range entries {
		if e.Date > weekAgo {
			out.EntriesThisWeek++
		}
		if e.Date == today && out.TodayMood == 0 {
			out.TodayMood = e.Mood
		}
	}

	n := len(entries)
	if n > 7 {
		n = 7
	}
	if n > 0 {
		sum := 0
		for _, e := range entries[:n] {
			sum += e.Mood
		}
		out.WeeklyAverage = math.Round(float64(sum)/float64(n)*10) / 10
	}
	return out, nil
}
