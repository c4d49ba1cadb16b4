package courseRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/course"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course browsing and template management routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetCourseDetails)

	adminGroup := app.Group("/api/admin/courses")
	adminGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Post("/:id/sections", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.AttachSection(), controllers.AttachSectionToCourse)
}
