package cardValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Completion validator middleware for the card completion toggle
func Completion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsCompleted *bool `json:"is_completed" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"is_completed": "is_completed is required!",
			})
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

// CreateCard validator middleware
func CreateCard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Keyword     string   `json:"keyword"`
			Question    string   `json:"question"`
			Answer      string   `json:"answer"`
			Explanation string   `json:"explanation"`
			Difficulty  string   `json:"difficulty"`
			Level       string   `json:"level"`
			Tags        []string `json:"tags"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Keyword) == "" {
			errors["keyword"] = "Keyword is required!"
		}
		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}
		if strings.TrimSpace(reqData.Answer) == "" {
			errors["answer"] = "Answer is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCard", reqData)
		return c.Next()
	}
}

// AttachCard validator middleware for template section membership
func AttachCard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CardID     uint `json:"card_id"`
			OrderIndex int  `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CardID == 0 {
			errors["card_id"] = "Card id is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttachCard", reqData)
		return c.Next()
	}
}

// UpdateSavedCard validator middleware
func UpdateSavedCard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Notes            *string `json:"notes"`
			ExpandedExample  *string `json:"expanded_example"`
			DifficultyRating *int    `json:"difficulty_rating"`
			DepthPreference  *string `json:"depth_preference"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DifficultyRating != nil {
			if *reqData.DifficultyRating < 1 || *reqData.DifficultyRating > 5 {
				errors["difficulty_rating"] = "Rating must be between 1 and 5!"
			}
		}
		if reqData.DepthPreference != nil {
			if *reqData.DepthPreference != "basic" && *reqData.DepthPreference != "advanced" {
				errors["depth_preference"] = "Depth preference must be basic or advanced!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateSavedCard", reqData)
		return c.Next()
	}
}
