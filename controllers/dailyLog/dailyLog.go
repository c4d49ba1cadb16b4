package dailyLogController

import (
	"encoding/json"
	"log"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	"github.com/BakariSp/Zero-AI-backend-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateDailyLog records today's study session for the user
func CreateDailyLog(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedDailyLog").(*struct {
		CompletedSections []uint `json:"completed_sections"`
		Notes             string `json:"notes"`
		StudyTimeMinutes  int    `json:"study_time_minutes"`
	})

	db := database.Database.Db
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entry := models.DailyLog{
		UserID:           userID,
		LogDate:          today,
		Notes:            reqData.Notes,
		StudyTimeMinutes: reqData.StudyTimeMinutes,
	}
	if len(reqData.CompletedSections) > 0 {
		raw, err := json.Marshal(reqData.CompletedSections)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid completed sections!", nil)
		}
		entry.CompletedSections = datatypes.JSON(raw)
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Error creating daily log for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create daily log!", nil)
	}

	streak, err := utils.CurrentStreak(db, userID)
	if err != nil {
		log.Printf("Error computing streak for user %d: %v", userID, err)
		streak = 0
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Daily log created successfully!", fiber.Map{
		"log":            entry,
		"current_streak": streak,
	})
}

func GetMyDailyLogs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	var logs []models.DailyLog
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("log_date desc").Limit(days).Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch daily logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily logs fetched successfully!", logs)
}

func GetMyStreak(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	streak, err := utils.CurrentStreak(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error computing streak for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute streak!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streak fetched successfully!", fiber.Map{
		"current_streak": streak,
	})
}
