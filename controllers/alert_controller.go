package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	Alerts *services.AlertBus
}

func NewAlertController(alerts *services.AlertBus) *AlertController {
	return &AlertController{Alerts: alerts}
}

func (ac *AlertController) Recent(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	alerts, err := ac.Alerts.Recent(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (ac *AlertController) MarkAllRead(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := ac.Alerts.MarkAllRead(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
