package plannerRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/planner"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/planner"

	"github.com/gofiber/fiber/v2"
)

// SetupPlannerRoutes sets up AI generation routes behind the daily paths quota
func SetupPlannerRoutes(app *fiber.App) {
	plannerGroup := app.Group("/api/planner", middleware.JWTMiddleware)

	plannerGroup.Post("/generate",
		validators.GeneratePath(),
		middleware.DailyQuotaMiddleware(middleware.ResourcePaths),
		controllers.GenerateLearningPath)
	plannerGroup.Get("/tasks/:taskId", controllers.GetGenerationTask)
}
