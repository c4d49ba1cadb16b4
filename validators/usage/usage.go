package usageValidator

import (
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateLimits validator middleware
func UpdateLimits() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PathsDailyLimit *int `json:"paths_daily_limit"`
			CardsDailyLimit *int `json:"cards_daily_limit"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PathsDailyLimit == nil && reqData.CardsDailyLimit == nil {
			errors["limits"] = "At least one limit is required!"
		}
		if reqData.PathsDailyLimit != nil && *reqData.PathsDailyLimit < 0 {
			errors["paths_daily_limit"] = "Limit cannot be negative!"
		}
		if reqData.CardsDailyLimit != nil && *reqData.CardsDailyLimit < 0 {
			errors["cards_daily_limit"] = "Limit cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateLimits", reqData)
		return c.Next()
	}
}
