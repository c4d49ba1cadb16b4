package sectionValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateSection validator middleware for user custom sections
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateSection", reqData)
		return c.Next()
	}
}

// AddCard validator middleware for adding a card to a user section
func AddCard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CardID     uint `json:"card_id"`
			OrderIndex *int `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CardID == 0 {
			errors["card_id"] = "Card id is required!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddCard", reqData)
		return c.Next()
	}
}

// CreateTemplateSection validator middleware
func CreateTemplateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          string `json:"title"`
			Description    string `json:"description"`
			LearningPathID *uint  `json:"learning_path_id"`
			OrderIndex     int    `json:"order_index"`
			EstimatedDays  int    `json:"estimated_days"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}
		if reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTemplateSection", reqData)
		return c.Next()
	}
}
