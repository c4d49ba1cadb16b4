package plannerValidator

import (
	"strings"

	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// GeneratePath validator middleware
func GeneratePath() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Topic     string   `json:"topic"`
			Interests []string `json:"interests"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Topic)) < 3 {
			errors["topic"] = "Topic must be at least 3 characters long!"
		}
		if len(reqData.Topic) > 500 {
			errors["topic"] = "Topic is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGeneratePath", reqData)
		return c.Next()
	}
}
