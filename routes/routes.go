package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires every service and controller explicitly; nothing reaches
// for package-global state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	rt := services.NewRealtimeHub()
	alerts := services.NewAlertBus(db, rt)

	tracker := services.NewTrackerService(db, alerts)
	goals := services.NewDailyGoalService(db, tracker)
	meds := services.NewMedicationService(db, alerts)
	appointments := services.NewAppointmentService(db)
	notes := services.NewNoteService(db)
	moods := services.NewMoodService(db)
	symptoms := services.NewSymptomService()
	chat := services.NewChatService(db, services.NewGeminiService())
	analytics := services.NewAnalyticsService(db, meds)

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	trackerCtl := controllers.NewTrackerController(tracker)
	goalCtl := controllers.NewDailyGoalController(goals)
	medCtl := controllers.NewMedicationController(meds)
	aptCtl := controllers.NewAppointmentController(appointments)
	noteCtl := controllers.NewNoteController(notes)
	moodCtl := controllers.NewMoodController(moods)
	symptomCtl := controllers.NewSymptomController(symptoms)
	chatCtl := controllers.NewChatController(chat)
	analyticsCtl := controllers.NewAnalyticsController(analytics)
	alertCtl := controllers.NewAlertController(alerts)
	realtimeCtl := controllers.NewRealtimeController(rt)

	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(db))
	{
		user := api.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.DELETE("", userCtl.DeleteAccount)
			user.GET("/alerts", alertCtl.Recent)
			user.POST("/alerts/read", alertCtl.MarkAllRead)
		}

		tracker := api.Group("/tracker")
		{
			tracker.GET("/today", trackerCtl.GetToday)
			tracker.GET("/totals", trackerCtl.GetTotals)
			tracker.GET("/history", trackerCtl.GetHistory)
			tracker.POST("/water", trackerCtl.AddWater)
			tracker.POST("/meals", trackerCtl.AddMeal)
			tracker.POST("/exercise", trackerCtl.AddExercise)
			tracker.PUT("/sleep", trackerCtl.UpdateSleep)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", goalCtl.GetGoals)
			goals.PUT("", goalCtl.UpdateGoals)
		}

		meds := api.Group("/medications")
		{
			meds.GET("", medCtl.List)
			meds.POST("", medCtl.Add)
			meds.PUT("/:id", medCtl.Update)
			meds.DELETE("/:id", medCtl.Delete)
			meds.POST("/:id/doses/:timeIndex/taken", medCtl.MarkDoseTaken)
			meds.GET("/doses/today", medCtl.TodaysDoses)
			meds.GET("/adherence", medCtl.AdherenceStats)
		}

		apts := api.Group("/appointments")
		{
			apts.GET("", aptCtl.List)
			apts.POST("", aptCtl.Add)
			apts.PUT("/:id", aptCtl.Update)
			apts.DELETE("/:id", aptCtl.Delete)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", noteCtl.List)
			notes.POST("", noteCtl.Add)
			notes.DELETE("/:id", noteCtl.Delete)
		}

		moods := api.Group("/moods")
		{
			moods.GET("", moodCtl.List)
			moods.POST("", moodCtl.Add)
			moods.GET("/summary", moodCtl.Summary)
		}

		api.POST("/symptom-check", symptomCtl.Check)

		chat := api.Group("/chat")
		{
			chat.GET("", chatCtl.History)
			chat.POST("", chatCtl.Send)
			chat.DELETE("", chatCtl.Clear)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/weekly", analyticsCtl.WeeklyOverview)
			analytics.GET("/summary", analyticsCtl.Summary)
		}

		api.GET("/ws/events", realtimeCtl.EventsWS)
	}

	return r
}
