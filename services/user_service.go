package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	Name              string                    `json:"name"`
	Age               int                       `json:"age"`
	Gender            string                    `json:"gender"`
	HeightCm          float64                   `json:"height_cm"`
	WeightKg          float64                   `json:"weight_kg"`
	ChronicConditions string                    `json:"chronic_conditions"`
	Allergies         string                    `json:"allergies"`
	EmergencyContacts []models.EmergencyContact `json:"emergency_contacts"`
}

func (s *UserService) GetProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := s.db.Preload("EmergencyContacts").
		Where("email = ? AND disabled = ?", email, false).
		First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	profile := map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"name":               user.Name,
		"age":                user.Age,
		"gender":             user.Gender,
		"height_cm":          user.HeightCm,
		"weight_kg":          user.WeightKg,
		"chronic_conditions": user.ChronicConditions,
		"allergies":          user.Allergies,
		"emergency_contacts": user.EmergencyContacts,
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = round2(bmi)
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(email string, input ProfileInput) error {
	var user models.User
	result := s.db.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ChronicConditions != "" {
		user.ChronicConditions = input.ChronicConditions
	}
	if input.Allergies != "" {
		user.Allergies = input.Allergies
	}

	if input.EmergencyContacts != nil {
		if err := s.db.Where("user_id = ?", user.ID).Delete(&models.EmergencyContact{}).Error; err != nil {
			return err
		}
		for i := range input.EmergencyContacts {
			input.EmergencyContacts[i].UserID = user.ID
		}
		if len(input.EmergencyContacts) > 0 {
			if err := s.db.Create(&input.EmergencyContacts).Error; err != nil {
				return err
			}
		}
	}

	return s.db.Save(&user).Error
}

// DeleteUser disables the account rather than dropping the rows.
func (s *UserService) DeleteUser(email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return err
	}
	user.Disabled = true
	return s.db.Save(&user).Error
}
