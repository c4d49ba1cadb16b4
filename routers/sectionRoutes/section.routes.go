package sectionRoutes

import (
	cardControllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/card"
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/section"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	cardValidators "github.com/BakariSp/Zero-AI-backend-sub000/validators/card"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/section"

	"github.com/gofiber/fiber/v2"
)

// SetupSectionRoutes sets up user section and template section routes
func SetupSectionRoutes(app *fiber.App) {
	sectionGroup := app.Group("/api/sections", middleware.JWTMiddleware)

	sectionGroup.Get("/me", controllers.GetMySections)
	sectionGroup.Get("/me/:id", controllers.GetMySectionDetails)
	sectionGroup.Post("/me", validators.CreateSection(), controllers.CreateCustomSection)
	sectionGroup.Post("/:id/copy", controllers.CopyTemplateSection)
	sectionGroup.Post("/me/:id/cards", validators.AddCard(), controllers.AddCardToMySection)
	sectionGroup.Delete("/me/:id/cards/:cardId", controllers.RemoveCardFromMySection)

	adminGroup := app.Group("/api/admin/sections")
	adminGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.CreateTemplateSection(), controllers.CreateTemplateSection)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.SuperuserMiddleware, controllers.DeleteTemplateSection)
	adminGroup.Post("/:id/cards", middleware.JWTMiddleware, middleware.SuperuserMiddleware, cardValidators.AttachCard(), cardControllers.AttachCardToSection)
}
