package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// MedicationService owns medication records and derives today's dose schedule
// from each medication's configured times on every read. There is no stored
// schedule table to drift out of sync.
type MedicationService struct {
	db     *gorm.DB
	alerts *AlertBus
}

func NewMedicationService(db *gorm.DB, alerts *AlertBus) *MedicationService {
	return &MedicationService{db: db, alerts: alerts}
}

type MedicationInput struct {
	Name      string   `json:"name" binding:"required"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

func (s *MedicationService) Add(userID uint, in MedicationInput) (*models.Medication, error) {
	if in.StartDate == "" {
		in.StartDate = localDateKey(time.Now())
	}
	med := models.Medication{
		UserID:    userID,
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		Times:     in.Times,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Taken:     map[string][]bool{},
	}
	if err := s.db.Create(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func (s *MedicationService) List(userID uint) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&meds).Error
	return meds, err
}

// Update replaces the editable fields of a medication, preserving its id and
// taken history. Returns gorm.ErrRecordNotFound when id has no match.
func (s *MedicationService) Update(userID uint, id string, in MedicationInput) (*models.Medication, error) {
	var med models.Medication
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&med).Error; err != nil {
		return nil, err
	}

	med.Name = in.Name
	med.Dosage = in.Dosage
	med.Frequency = in.Frequency
	med.Times = in.Times
	if in.StartDate != "" {
		med.StartDate = in.StartDate
	}
	med.EndDate = in.EndDate

	if err := s.db.Save(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

// Delete removes the medication and its history. Unknown ids are a no-op.
func (s *MedicationService) Delete(userID uint, id string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Medication{}).Error
}

// MarkDoseTaken records that the dose at slot timeIndex was taken today.
// The transition is one-way; there is no un-take. The date's slot slice is
// created or extended as needed, never truncating marks at other indices.
func (s *MedicationService) MarkDoseTaken(userID uint, id string, timeIndex int) (*models.Medication, error) {
	var med models.Medication
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&med).Error; err != nil {
		return nil, err
	}

	if timeIndex < 0 || timeIndex >= len(med.Times) {
		return nil, fmt.Errorf("time index %d out of range for %d dose times", timeIndex, len(med.Times))
	}

	today := localDateKey(time.Now())
	if med.Taken == nil {
		med.Taken = map[string][]bool{}
	}
	slots := med.Taken[today]
	for len(slots) <= timeIndex {
		slots = append(slots, false)
	}
	slots[timeIndex] = true
	med.Taken[today] = slots

	if err := s.db.Save(&med).Error; err != nil {
		return nil, err
	}

	if s.alerts != nil {
		s.alerts.Emit(userID, "info", fmt.Sprintf("%s (%s) marked as taken", med.Name, med.Times[timeIndex]))
	}
	return &med, nil
}

// Dose is one scheduled administration of a medication at one time slot today.
type Dose struct {
	Medication models.Medication `json:"medication"`
	Time       string            `json:"time"`
	TimeIndex  int               `json:"time_index"`
	Taken      bool              `json:"taken"`
}

// TodaysDoses synthesizes the day's schedule from every medication's times,
// sorted ascending by time string (valid for zero-padded 24h "HH:MM").
// Equal times keep their input order.
func (s *MedicationService) TodaysDoses(userID uint) ([]Dose, error) {
	meds, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	today := localDateKey(time.Now())
	doses := make([]Dose, 0)
	for _, med := range meds {
		for i, t := range med.Times {
			doses = append(doses, Dose{
				Medication: med,
				Time:       t,
				TimeIndex:  i,
				Taken:      med.TakenAt(today, i),
			})
		}
	}

	sort.SliceStable(doses, func(i, j int) bool { return doses[i].Time < doses[j].Time })
	return doses, nil
}

type AdherenceStats struct {
	Completed     int `json:"completed"`
	Total         int `json:"total"`
	CompliancePct int `json:"compliance_pct"`
}

// AdherenceStats reports today's completed/total doses. Zero doses yields
// zero percent, never a division by zero.
func (s *MedicationService) AdherenceStats(userID uint) (AdherenceStats, error) {
	doses, err := s.TodaysDoses(userID)
	if err != nil {
		return AdherenceStats{}, err
	}

	stats := AdherenceStats{Total: len(doses)}
	for _, d := range doses {
		if d.Taken {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompliancePct = int(math.Round(100 * float64(stats.Completed) / float64(stats.Total)))
	}
	return stats, nil
}

// IsNotFound reports whether err is the store's missing-record error, so
// controllers can map it to 404 without importing gorm.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
