package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

// WeeklyOverview serves ?week_start=YYYY-MM-DD, defaulting to six days ago so
// the window ends today.
func (ac *AnalyticsController) WeeklyOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	weekStart := time.Now().AddDate(0, 0, -6)
	if v := c.Query("week_start"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_start. Use YYYY-MM-DD"})
			return
		}
		weekStart = parsed
	}

	overview, err := ac.Analytics.WeeklyOverview(c.Request.Context(), uid, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (ac *AnalyticsController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	to := time.Now()
	from := to.AddDate(0, 0, -6)
	if v := c.Query("from"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from. Use YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to. Use YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	summary, err := ac.Analytics.Summary(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
