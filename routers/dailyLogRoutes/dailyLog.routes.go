package dailyLogRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/dailyLog"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/dailyLog"

	"github.com/gofiber/fiber/v2"
)

// SetupDailyLogRoutes sets up study log and streak routes
func SetupDailyLogRoutes(app *fiber.App) {
	logGroup := app.Group("/api/daily-logs", middleware.JWTMiddleware)

	logGroup.Post("/", validators.DailyLog(), controllers.CreateDailyLog)
	logGroup.Get("/me", controllers.GetMyDailyLogs)
	logGroup.Get("/me/streak", controllers.GetMyStreak)
}
