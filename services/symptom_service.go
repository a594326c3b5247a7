package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SymptomService gives preliminary, rule-based triage guidance. It keeps no
// state; each assessment is derived from the submitted symptom list alone.
type SymptomService struct{}

func NewSymptomService() *SymptomService { return &SymptomService{} }

const (
	TriageSelfCare      = "self-care"
	TriageConsultDoctor = "consult-doctor"
	TriageEmergency     = "emergency"
)

type SymptomCheckResult struct {
	ID                 string    `json:"id"`
	Symptoms           []string  `json:"symptoms"`
	PossibleConditions []string  `json:"possible_conditions"`
	TriageLevel        string    `json:"triage_level"`
	Recommendations    []string  `json:"recommendations"`
	Timestamp          time.Time `json:"timestamp"`
}

var emergencySigns = []string{
	"chest pain", "difficulty breathing", "shortness of breath",
	"severe bleeding", "unconscious", "numbness", "slurred speech",
}

var doctorSigns = []string{
	"fever", "persistent", "worsening", "blood", "severe pain",
	"vomiting", "rash",
}

// Assess filters out blank entries, scores the remainder against the keyword
// tiers and returns canned guidance for the resulting triage level.
func (s *SymptomService) Assess(symptoms []string) SymptomCheckResult {
	cleaned := make([]string, 0, len(symptoms))
	for _, sym := range symptoms {
		if t := strings.TrimSpace(sym); t != "" {
			cleaned = append(cleaned, t)
		}
	}

	level := TriageSelfCare
	for _, sym := range cleaned {
		lower := strings.ToLower(sym)
		if containsAny(lower, emergencySigns) {
			level = TriageEmergency
			break
		}
		if containsAny(lower, doctorSigns) {
			level = TriageConsultDoctor
		}
	}

	return SymptomCheckResult{
		ID:                 uuid.NewString(),
		Symptoms:           cleaned,
		PossibleConditions: conditionsFor(level),
		TriageLevel:        level,
		Recommendations:    recommendationsFor(level),
		Timestamp:          time.Now(),
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func conditionsFor(level string) []string {
	switch level {
	case TriageEmergency:
		return []string{"Potentially serious condition requiring immediate evaluation"}
	case TriageConsultDoctor:
		return []string{"Infection", "Inflammatory condition", "Condition requiring professional diagnosis"}
	default:
		return []string{"Common cold", "Seasonal allergies", "Mild viral infection"}
	}
}

func recommendationsFor(level string) []string {
	switch level {
	case TriageEmergency:
		return []string{
			"Call emergency services or go to the nearest emergency room",
			"Do not drive yourself if symptoms are severe",
		}
	case TriageConsultDoctor:
		return []string{
			"Schedule an appointment with your doctor within the next day or two",
			"Keep a record of when symptoms occur and their severity",
			"Rest and stay hydrated in the meantime",
		}
	default:
		return []string{
			"Rest and stay hydrated",
			"Consider over-the-counter medications for symptom relief",
			"Monitor symptoms for worsening",
		}
	}
}
