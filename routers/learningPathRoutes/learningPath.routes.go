package learningPathRoutes

import (
	cardControllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/card"
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/learningPath"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	cardValidators "github.com/BakariSp/Zero-AI-backend-sub000/validators/card"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/learningPath"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningPathRoutes sets up public browsing, adoption and the
// per-path card completion toggle
func SetupLearningPathRoutes(app *fiber.App) {
	pathGroup := app.Group("/api/learning-paths")

	pathGroup.Get("/", controllers.GetAllLearningPaths)
	pathGroup.Get("/me", middleware.JWTMiddleware, controllers.GetMyLearningPaths)
	pathGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetLearningPathDetails)
	pathGroup.Post("/:id/adopt", middleware.JWTMiddleware, controllers.AddPathToUser)

	// Strict completion toggle scoped to one section of one adopted path
	pathGroup.Put("/:pathId/sections/:sectionId/cards/:cardId/completion",
		middleware.JWTMiddleware, cardValidators.Completion(), cardControllers.SetCardCompletion)

	// Template management
	adminGroup := app.Group("/api/admin/learning-paths")
	adminGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.CreatePath(), controllers.CreateLearningPath)
	adminGroup.Put("/:id", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.UpdatePath(), controllers.UpdateLearningPath)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.SuperuserMiddleware, controllers.DeleteLearningPath)
	adminGroup.Post("/:id/courses", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.AttachCourse(), controllers.AttachCourseToPath)
}
