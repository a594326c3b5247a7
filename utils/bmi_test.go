package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	cases := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"negative weight", 175, -5},
		{"too short", 30, 70},
		{"too heavy", 175, 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateBMI(tc.heightCm, tc.weightKg)
			assert.Error(t, err)
		})
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25.0))
	assert.Equal(t, "Obese", BMICategory(30.0))
	assert.Equal(t, "", BMICategory(0))
}

func TestHealthyWeightRangeKg(t *testing.T) {
	low, high := HealthyWeightRangeKg(175)
	assert.InDelta(t, 56.7, low, 0.1)
	assert.InDelta(t, 76.3, high, 0.1)

	low, high = HealthyWeightRangeKg(0)
	assert.Zero(t, low)
	assert.Zero(t, high)
}
