package usageRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/usage"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/usage"

	"github.com/gofiber/fiber/v2"
)

// SetupUsageRoutes sets up daily quota inspection and admin limit routes
func SetupUsageRoutes(app *fiber.App) {
	usageGroup := app.Group("/api/usage", middleware.JWTMiddleware)

	usageGroup.Get("/me", controllers.GetMyDailyUsage)
	usageGroup.Get("/me/history", controllers.GetMyUsageHistory)

	adminGroup := app.Group("/api/admin/usage")
	adminGroup.Put("/:userId/limits", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.UpdateLimits(), controllers.UpdateUserLimits)
}
