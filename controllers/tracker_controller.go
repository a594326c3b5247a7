package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	Tracker *services.TrackerService
}

func NewTrackerController(tracker *services.TrackerService) *TrackerController {
	return &TrackerController{Tracker: tracker}
}

// GetToday returns today's ledger row, creating it on first access.
func (tc *TrackerController) GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	logRow, err := tc.Tracker.GetOrCreateTodayLog(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logRow)
}

func (tc *TrackerController) AddWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		AmountML int `json:"amount_ml"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logRow, err := tc.Tracker.AddWater(uid, body.AmountML)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"water_intake_ml": logRow.WaterIntakeML})
}

func (tc *TrackerController) AddMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Name     string `json:"name"`
		Time     string `json:"time"`
		Calories *int   `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := tc.Tracker.AddMeal(uid, body.Name, body.Time, body.Calories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (tc *TrackerController) AddExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Type            string `json:"type"`
		DurationMinutes int    `json:"duration_minutes"`
		CaloriesBurned  *int   `json:"calories_burned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := tc.Tracker.AddExercise(uid, body.Type, body.DurationMinutes, body.CaloriesBurned)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (tc *TrackerController) UpdateSleep(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Hours float64 `json:"hours"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logRow, err := tc.Tracker.UpdateSleepHours(uid, body.Hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sleep_hours": logRow.SleepHours})
}

func (tc *TrackerController) GetTotals(c *gin.Context) {
	uid := c.GetUint("userID")

	totals, err := tc.Tracker.GetDailyTotals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (tc *TrackerController) GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	logs, err := tc.Tracker.GetHistory(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
