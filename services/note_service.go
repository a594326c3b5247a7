package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

type NoteInput struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *NoteService) Add(userID uint, in NoteInput) (*models.HealthNote, error) {
	note := models.HealthNote{
		UserID:  userID,
		Date:    localDateKey(time.Now()),
		Title:   in.Title,
		Content: in.Content,
		Tags:    in.Tags,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) List(userID uint) ([]models.HealthNote, error) {
	var notes []models.HealthNote
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (s *NoteService) Delete(userID uint, id string) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.HealthNote{}).Error
}
