package learningPathValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

var validDifficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

// CreatePath validator middleware
func CreatePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			Category        string `json:"category"`
			DifficultyLevel string `json:"difficulty_level"`
			EstimatedDays   int    `json:"estimated_days"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.DifficultyLevel != "" && !validDifficulties[reqData.DifficultyLevel] {
			errors["difficulty_level"] = "Difficulty must be beginner, intermediate or advanced!"
		}
		if reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreatePath", reqData)
		return c.Next()
	}
}

// UpdatePath validator middleware
func UpdatePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           *string `json:"title"`
			Description     *string `json:"description"`
			Category        *string `json:"category"`
			DifficultyLevel *string `json:"difficulty_level"`
			EstimatedDays   *int    `json:"estimated_days"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.DifficultyLevel != nil && !validDifficulties[*reqData.DifficultyLevel] {
			errors["difficulty_level"] = "Difficulty must be beginner, intermediate or advanced!"
		}
		if reqData.EstimatedDays != nil && *reqData.EstimatedDays < 0 {
			errors["estimated_days"] = "Estimated days cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdatePath", reqData)
		return c.Next()
	}
}

// AttachCourse validator middleware
func AttachCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID   uint `json:"course_id"`
			OrderIndex int  `json:"order_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttachCourse", reqData)
		return c.Next()
	}
}
