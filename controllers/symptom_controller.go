package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SymptomController struct {
	Symptoms *services.SymptomService
}

func NewSymptomController(symptoms *services.SymptomService) *SymptomController {
	return &SymptomController{Symptoms: symptoms}
}

func (sc *SymptomController) Check(c *gin.Context) {
	var body struct {
		Symptoms []string `json:"symptoms" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := sc.Symptoms.Assess(body.Symptoms)
	c.JSON(http.StatusOK, result)
}
