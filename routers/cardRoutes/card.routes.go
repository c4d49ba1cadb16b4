package cardRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/card"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/card"

	"github.com/gofiber/fiber/v2"
)

// SetupCardRoutes sets up card browsing, the user collection and the
// progress recalculation endpoint
func SetupCardRoutes(app *fiber.App) {
	cardGroup := app.Group("/api/cards")

	cardGroup.Get("/", controllers.GetCards)
	cardGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetCardDetails)
	cardGroup.Post("/:id/save", middleware.JWTMiddleware, controllers.SaveCard)
	cardGroup.Put("/:id/saved", middleware.JWTMiddleware, validators.UpdateSavedCard(), controllers.UpdateSavedCard)
	cardGroup.Post("/:id/recalculate", middleware.JWTMiddleware, controllers.RecalculateCardProgress)

	adminGroup := app.Group("/api/admin/cards")
	adminGroup.Post("/", middleware.JWTMiddleware, middleware.SuperuserMiddleware, validators.CreateCard(), controllers.CreateCard)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, middleware.SuperuserMiddleware, controllers.DeleteCard)
}
