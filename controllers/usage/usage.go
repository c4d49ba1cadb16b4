package usageController

import (
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"github.com/gofiber/fiber/v2"
)

func GetMyDailyUsage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	usage, err := middleware.GetOrCreateDailyUsage(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error fetching daily usage for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch usage!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Usage fetched successfully!", fiber.Map{
		"usage": usage,
		"remaining": fiber.Map{
			"paths": usage.PathsDailyLimit - usage.PathsGenerated,
			"cards": usage.CardsDailyLimit - usage.CardsGenerated,
		},
	})
}

func GetMyUsageHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	var records []models.UserDailyUsage
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("usage_date desc").Limit(days).Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch usage history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Usage history fetched successfully!", records)
}

// UpdateUserLimits lets an admin raise or lower one user's daily quotas
func UpdateUserLimits(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData := c.Locals("validatedUpdateLimits").(*struct {
		PathsDailyLimit *int `json:"paths_daily_limit"`
		CardsDailyLimit *int `json:"cards_daily_limit"`
	})

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	usage, err := middleware.GetOrCreateDailyUsage(db, uint(targetID))
	if err != nil {
		log.Printf("Error fetching usage for user %d: %v", targetID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update limits!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.PathsDailyLimit != nil {
		updates["paths_daily_limit"] = *reqData.PathsDailyLimit
	}
	if reqData.CardsDailyLimit != nil {
		updates["cards_daily_limit"] = *reqData.CardsDailyLimit
	}

	if len(updates) > 0 {
		if err := db.Model(usage).Updates(updates).Error; err != nil {
			log.Printf("Error updating limits for user %d: %v", targetID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update limits!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Limits updated successfully!", usage)
}
