package authRoutes

import (
	controllers "github.com/BakariSp/Zero-AI-backend-sub000/controllers/auth"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	validators "github.com/BakariSp/Zero-AI-backend-sub000/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)

	userGroup := app.Group("/api/users")
	userGroup.Get("/me", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/me", middleware.JWTMiddleware, validators.ProfileUpdate(), controllers.UpdateProfile)
	userGroup.Put("/me/interests", middleware.JWTMiddleware, validators.Interests(), controllers.UpdateInterests)
}
