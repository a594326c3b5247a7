package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

type AppointmentInput struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Time   string `json:"time"`                    // HH:MM
	Doctor string `json:"doctor"`
	Type   string `json:"type"`
	Notes  string `json:"notes"`
}

func (s *AppointmentService) Add(userID uint, in AppointmentInput) (*models.Appointment, error) {
	apt := models.Appointment{
		UserID: userID,
		Date:   in.Date,
		Time:   in.Time,
		Doctor: in.Doctor,
		Type:   in.Type,
		Notes:  in.Notes,
	}
	if err := s.db.Create(&apt).Error; err != nil {
		return nil, err
	}
	return &apt, nil
}

func (s *AppointmentService) Update(userID uint, id string, in AppointmentInput) (*models.Appointment, error) {
	var apt models.Appointment
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&apt).Error; err != nil {
		return nil, err
	}

	apt.Date = in.Date
	apt.Time = in.Time
	apt.Doctor = in.Doctor
	apt.Type = in.Type
	apt.Notes = in.Notes

	if err := s.db.Save(&apt).Error; err != nil {
		return nil, err
	}
	return &apt, nil
}

func (s *AppointmentService) Delete(userID uint, id string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Appointment{}).Error
}

type AppointmentList struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

// List splits appointments around today: upcoming sorted soonest-first, past
// most-recent-first. Date-key string comparison is valid for YYYY-MM-DD.
func (s *AppointmentService) List(userID uint) (AppointmentList, error) {
	var all []models.Appointment
	if err := s.db.Where("user_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&all).Error; err != nil {
		return AppointmentList{}, err
	}

	today := localDateKey(time.Now())
	out := AppointmentList{
		Upcoming: make([]models.Appointment, 0),
		Past:     make([]models.Appointment, 0),
	}
	for _, apt := range all {
		if apt.Date >= today {
			out.Upcoming = append(out.Upcoming, apt)
		} else {
			// prepend so past ends up newest first
			out.Past = append([]models.Appointment{apt}, out.Past...)
		}
	}
	return out, nil
}
