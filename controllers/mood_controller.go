package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{Moods: moods}
}

func (mc *MoodController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := mc.Moods.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (mc *MoodController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := mc.Moods.Add(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (mc *MoodController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := mc.Moods.Summary(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
