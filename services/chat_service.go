package services

import (
	"backend/models"

	"gorm.io/gorm"
)

// ChatService persists the assistant transcript and runs one round-trip per
// user message. The assistant reply is always a displayable string, so a
// failed upstream call still appends a message pair.
type ChatService struct {
	db     *gorm.DB
	gemini *GeminiService
}

func NewChatService(db *gorm.DB, gemini *GeminiService) *ChatService {
	return &ChatService{db: db, gemini: gemini}
}

// Send appends the user's message, asks the assistant, and appends its reply.
func (s *ChatService) Send(userID uint, content string) (*models.ChatMessage, *models.ChatMessage, error) {
	userMsg := models.ChatMessage{
		UserID:  userID,
		Type:    models.ChatRoleUser,
		Content: content,
	}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, nil, err
	}

	reply := s.gemini.GenerateResponse(content)

	assistantMsg := models.ChatMessage{
		UserID:  userID,
		Type:    models.ChatRoleAssistant,
		Content: reply,
	}
	if err := s.db.Create(&assistantMsg).Error; err != nil {
		return &userMsg, nil, err
	}
	return &userMsg, &assistantMsg, nil
}

// History returns the transcript oldest-first.
func (s *ChatService) History(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.Where("user_id = ?", userID).Order("timestamp ASC").Find(&msgs).Error
	return msgs, err
}

// Clear deletes the user's transcript.
func (s *ChatService) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
}
