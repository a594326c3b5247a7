package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MedicationController struct {
	Meds *services.MedicationService
}

func NewMedicationController(meds *services.MedicationService) *MedicationController {
	return &MedicationController{Meds: meds}
}

func (mc *MedicationController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	meds, err := mc.Meds.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

func (mc *MedicationController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := mc.Meds.Add(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

func (mc *MedicationController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := mc.Meds.Update(uid, c.Param("id"), input)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

func (mc *MedicationController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := mc.Meds.Delete(uid, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MedicationController) MarkDoseTaken(c *gin.Context) {
	uid := c.GetUint("userID")

	timeIndex, err := strconv.Atoi(c.Param("timeIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time index"})
		return
	}

	med, err := mc.Meds.MarkDoseTaken(uid, c.Param("id"), timeIndex)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

func (mc *MedicationController) TodaysDoses(c *gin.Context) {
	uid := c.GetUint("userID")

	doses, err := mc.Meds.TodaysDoses(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doses)
}

func (mc *MedicationController) AdherenceStats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := mc.Meds.AdherenceStats(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
