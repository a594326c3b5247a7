package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	Goals *services.DailyGoalService
}

func NewDailyGoalController(goals *services.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{Goals: goals}
}

func (gc *DailyGoalController) GetGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goal, progress, err := gc.Goals.GetGoalsAndProgress(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func (gc *DailyGoalController) UpdateGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		WaterML         int     `json:"water_ml"`
		Meals           int     `json:"meals"`
		ExerciseMinutes int     `json:"exercise_minutes"`
		SleepHours      float64 `json:"sleep_hours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Goals.UpsertGoals(uid, req.WaterML, req.Meals, req.ExerciseMinutes, req.SleepHours); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
