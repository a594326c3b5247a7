package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodaysDosesSortedByTime(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	a, err := svc.Add(1, MedicationInput{Name: "Metformin", Times: []string{"20:00", "08:00"}})
	require.NoError(t, err)
	b, err := svc.Add(1, MedicationInput{Name: "Lisinopril", Times: []string{"12:00"}})
	require.NoError(t, err)

	doses, err := svc.TodaysDoses(1)
	require.NoError(t, err)
	require.Len(t, doses, 3)

	assert.Equal(t, "08:00", doses[0].Time)
	assert.Equal(t, a.ID, doses[0].Medication.ID)
	assert.Equal(t, 1, doses[0].TimeIndex)

	assert.Equal(t, "12:00", doses[1].Time)
	assert.Equal(t, b.ID, doses[1].Medication.ID)

	assert.Equal(t, "20:00", doses[2].Time)
	assert.Equal(t, a.ID, doses[2].Medication.ID)
	assert.Equal(t, 0, doses[2].TimeIndex)

	for _, d := range doses {
		assert.False(t, d.Taken, "nothing marked yet")
	}
}

func TestMarkDoseTakenAffectsOnlyThatSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	med, err := svc.Add(1, MedicationInput{Name: "Metformin", Times: []string{"08:00", "14:00", "20:00"}})
	require.NoError(t, err)

	_, err = svc.MarkDoseTaken(1, med.ID, 1)
	require.NoError(t, err)

	doses, err := svc.TodaysDoses(1)
	require.NoError(t, err)
	require.Len(t, doses, 3)

	taken := 0
	for _, d := range doses {
		if d.Taken {
			taken++
			assert.Equal(t, 1, d.TimeIndex)
			assert.Equal(t, "14:00", d.Time)
		}
	}
	assert.Equal(t, 1, taken)

	// marking again is a no-op, not a toggle
	_, err = svc.MarkDoseTaken(1, med.ID, 1)
	require.NoError(t, err)
	stats, err := svc.AdherenceStats(1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Completed)
}

func TestMarkDoseTakenRejectsOutOfRangeIndex(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	med, err := svc.Add(1, MedicationInput{Name: "Metformin", Times: []string{"08:00"}})
	require.NoError(t, err)

	_, err = svc.MarkDoseTaken(1, med.ID, 3)
	assert.Error(t, err)
	_, err = svc.MarkDoseTaken(1, med.ID, -1)
	assert.Error(t, err)

	stats, err := svc.AdherenceStats(1)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Completed, "rejected marks must not corrupt the matrix")
}

func TestAdherenceStatsRoundsAndHandlesZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	stats, err := svc.AdherenceStats(1)
	require.NoError(t, err)
	assert.Equal(t, AdherenceStats{Completed: 0, Total: 0, CompliancePct: 0}, stats)

	med, err := svc.Add(1, MedicationInput{Name: "Metformin", Times: []string{"08:00", "14:00", "20:00"}})
	require.NoError(t, err)
	_, err = svc.MarkDoseTaken(1, med.ID, 0)
	require.NoError(t, err)

	stats, err = svc.AdherenceStats(1)
	require.NoError(t, err)
	assert.Equal(t, AdherenceStats{Completed: 1, Total: 3, CompliancePct: 33}, stats)
}

func TestUpdatePreservesTakenHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	med, err := svc.Add(1, MedicationInput{Name: "Metformin", Dosage: "500 mg", Times: []string{"08:00", "20:00"}})
	require.NoError(t, err)
	_, err = svc.MarkDoseTaken(1, med.ID, 0)
	require.NoError(t, err)

	updated, err := svc.Update(1, med.ID, MedicationInput{
		Name:   "Metformin XR",
		Dosage: "750 mg",
		Times:  []string{"08:00", "20:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, med.ID, updated.ID)
	assert.Equal(t, "Metformin XR", updated.Name)

	today := localDateKey(time.Now())
	assert.True(t, updated.TakenAt(today, 0))
	assert.False(t, updated.TakenAt(today, 1))
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	_, err := svc.Update(1, "no-such-id", MedicationInput{Name: "Anything"})
	assert.True(t, IsNotFound(err))
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	require.NoError(t, svc.Delete(1, "no-such-id"))
}

func TestTakenAtToleratesGaps(t *testing.T) {
	med := models.Medication{
		Times: []string{"08:00", "14:00", "20:00"},
		Taken: map[string][]bool{
			"2026-08-29": {true}, // shorter than Times
		},
	}

	assert.True(t, med.TakenAt("2026-08-29", 0))
	assert.False(t, med.TakenAt("2026-08-29", 1), "short slice reads as not taken")
	assert.False(t, med.TakenAt("2026-08-29", 99))
	assert.False(t, med.TakenAt("2026-08-28", 0), "absent date reads as not taken")
}

func TestEmptyTimesYieldsNoDoses(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicationService(db, nil)

	_, err := svc.Add(1, MedicationInput{Name: "PRN painkiller"})
	require.NoError(t, err)

	doses, err := svc.TodaysDoses(1)
	require.NoError(t, err)
	assert.Empty(t, doses)
}
