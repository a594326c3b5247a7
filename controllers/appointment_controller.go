package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Appointments: appointments}
}

func (ac *AppointmentController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	list, err := ac.Appointments.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ac *AppointmentController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apt, err := ac.Appointments.Add(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, apt)
}

func (ac *AppointmentController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apt, err := ac.Appointments.Update(uid, c.Param("id"), input)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (ac *AppointmentController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := ac.Appointments.Delete(uid, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
