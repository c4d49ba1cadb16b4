package dailyLogValidator

import (
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// DailyLog validator middleware
func DailyLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompletedSections []uint `json:"completed_sections"`
			Notes             string `json:"notes"`
			StudyTimeMinutes  int    `json:"study_time_minutes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudyTimeMinutes < 0 {
			errors["study_time_minutes"] = "Study time cannot be negative!"
		}
		if reqData.StudyTimeMinutes > 24*60 {
			errors["study_time_minutes"] = "Study time cannot exceed a day!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDailyLog", reqData)
		return c.Next()
	}
}
