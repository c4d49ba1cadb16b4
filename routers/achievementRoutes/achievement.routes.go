package achievementRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/achievement"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAchievementRoutes sets up badge listing and awarding routes
func SetupAchievementRoutes(app *fiber.App) {
	achievementGroup := app.Group("/api/achievements", middleware.JWTMiddleware)

	achievementGroup.Get("/", controllers.GetAchievements)
	achievementGroup.Get("/me", controllers.GetMyAchievements)
	achievementGroup.Post("/check", controllers.CheckAchievements)
}
