package middleware

import (
	"errors"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"
	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Quota resource names
const (
	ResourcePaths = "paths"
	ResourceCards = "cards"
)

// GetOrCreateDailyUsage returns today's usage row for the user, creating it
// with the configured default limits when missing.
func GetOrCreateDailyUsage(db *gorm.DB, userID uint) (*models.UserDailyUsage, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var usage models.UserDailyUsage
	err := db.Where("user_id = ? AND usage_date = ?", userID, today).First(&usage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		usage = models.UserDailyUsage{
			UserID:          userID,
			UsageDate:       today,
			PathsDailyLimit: config.AppConfig.PathsDailyLimit,
			CardsDailyLimit: config.AppConfig.CardsDailyLimit,
		}
		if err := db.Create(&usage).Error; err != nil {
			return nil, err
		}
		return &usage, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// DailyQuotaMiddleware rejects the request with 429 once the user has spent
// today's generation quota for the given resource, and consumes one unit
// otherwise. The used/limit counts are exposed via c.Locals("dailyUsage")
// for handlers that want to echo them in responses.
func DailyQuotaMiddleware(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		usage, err := GetOrCreateDailyUsage(database.Database.Db, userID)
		if err != nil {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check daily usage!", nil)
		}

		var used, limit int
		var column string
		switch resource {
		case ResourceCards:
			used, limit, column = usage.CardsGenerated, usage.CardsDailyLimit, "cards_generated"
		default:
			used, limit, column = usage.PathsGenerated, usage.PathsDailyLimit, "paths_generated"
		}

		if used >= limit {
			return JsonResponse(c, fiber.StatusTooManyRequests, false, "Daily generation limit reached!", fiber.Map{
				"resource": resource,
				"used":     used,
				"limit":    limit,
			})
		}

		if err := database.Database.Db.Model(usage).
			Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record daily usage!", nil)
		}

		c.Locals("dailyUsage", usage)
		return c.Next()
	}
}
