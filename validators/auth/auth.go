package authValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Username)) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "Invalid email!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ProfileUpdate validator middleware
func ProfileUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName       *string `json:"full_name"`
			ProfilePicture *string `json:"profile_picture"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FullName != nil && len(strings.TrimSpace(*reqData.FullName)) == 0 {
			errors["full_name"] = "Full name cannot be empty!"
		}
		if reqData.ProfilePicture != nil {
			if err := validate.Var(*reqData.ProfilePicture, "url"); err != nil {
				errors["profile_picture"] = "Profile picture must be a valid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}

// Interests validator middleware
func Interests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Interests []string `json:"interests"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Interests) == 0 {
			errors["interests"] = "At least one interest is required!"
		}
		for _, interest := range reqData.Interests {
			if strings.TrimSpace(interest) == "" {
				errors["interests"] = "Interests cannot be empty strings!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInterests", reqData)
		return c.Next()
	}
}
