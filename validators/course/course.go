package courseValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			EstimatedDays int    `json:"estimated_days"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

// AttachSection validator middleware
func AttachSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID  uint `json:"section_id"`
			OrderIndex int  `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section id is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttachSection", reqData)
		return c.Next()
	}
}
