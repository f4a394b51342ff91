package routes

import (
	"log"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	expenseSvc := services.NewExpenseService(db)
	mealSvc := services.NewMealService(db)
	healthSvc := services.NewHealthService(db)
	gameSvc := services.NewGamificationService(db)
	analyticsSvc := services.NewAnalyticsService(db, expenseSvc, mealSvc, healthSvc)

	hub := services.NewRealtimeHub()
	pushSvc, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push service disabled: %v", err)
		pushSvc = nil
	}
	services.InitEventDeps(db, hub, pushSvc)

	expenseCtl := controllers.NewExpenseController(expenseSvc, gameSvc)
	mealCtl := controllers.NewMealController(mealSvc, gameSvc)
	healthCtl := controllers.NewHealthController(healthSvc, gameSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	gameCtl := controllers.NewGamificationController(gameSvc)
	challengeCtl := controllers.NewChallengeController(gameSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.DELETE("/user", controllers.DeleteAccount)

		api.POST("/expenses", expenseCtl.Create)
		api.GET("/expenses", expenseCtl.List)
		api.PUT("/expenses/:id", expenseCtl.Update)
		api.DELETE("/expenses/:id", expenseCtl.Delete)

		api.POST("/meals", mealCtl.Create)
		api.GET("/meals", mealCtl.List)
		api.PUT("/meals/:id", mealCtl.Update)
		api.DELETE("/meals/:id", mealCtl.Delete)

		api.POST("/health/metrics", healthCtl.AddMetric)
		api.PUT("/health/metrics/:id", healthCtl.UpdateMetric)
		api.POST("/health/water", healthCtl.AddWater)
		api.PUT("/health/water/:id", healthCtl.UpdateWater)
		api.POST("/health/exercise", healthCtl.AddExercise)
		api.PUT("/health/exercise/:id", healthCtl.UpdateExercise)

		api.GET("/analytics/overview", analyticsCtl.GetOverview)
		api.GET("/analytics/expenses", analyticsCtl.GetExpenseAnalytics)
		api.GET("/analytics/meals", analyticsCtl.GetMealAnalytics)
		api.GET("/analytics/health", analyticsCtl.GetHealthAnalytics)
		api.POST("/analytics/weekly-summary", analyticsCtl.SendWeeklySummary)

		api.POST("/gamification/coins", gameCtl.AwardCoins)
		api.POST("/gamification/streak", gameCtl.UpdateStreak)
		api.GET("/gamification/badges", gameCtl.GetBadges)
		api.POST("/gamification/level-up", gameCtl.LevelUp)
		api.GET("/gamification/leaderboard", gameCtl.GetLeaderboard)

		api.GET("/challenges", challengeCtl.List)
		api.GET("/challenges/mine", challengeCtl.Mine)
		api.POST("/challenges/:id/join", challengeCtl.Join)
		api.POST("/challenges/:id/progress", challengeCtl.UpdateProgress)

		api.GET("/notifications", controllers.ListNotifications)

		if pushSvc != nil {
			deviceCtl := controllers.NewDeviceController(pushSvc)
			api.POST("/devices", deviceCtl.Register)
		}

		api.GET("/ws/events", realtimeCtl.EventsWS)
	}

	return r
}
