package achievementController

import (
	"encoding/json"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

type achievementCriteria struct {
	StreakDays     int `json:"streak_days"`
	CompletedPaths int `json:"completed_paths"`
	CompletedCards int `json:"completed_cards"`
}

func GetAchievements(c *fiber.Ctx) error {
	var achievements []models.Achievement
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Find(&achievements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", achievements)
}

func GetMyAchievements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var earned []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Order("achieved_at desc").Find(&earned).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch achievements!", nil)
	}

	type entry struct {
		models.UserAchievement
		Achievement models.Achievement `json:"achievement"`
	}

	result := make([]entry, 0, len(earned))
	for _, record := range earned {
		var achievement models.Achievement
		if err := db.Where("id = ?", record.AchievementID).First(&achievement).Error; err != nil {
			continue
		}
		result = append(result, entry{UserAchievement: record, Achievement: achievement})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", result)
}

// CheckAchievements evaluates every badge the user has not earned yet and
// awards the ones whose criteria now hold
func CheckAchievements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var achievements []models.Achievement
	if err := db.Where("is_deleted = ?", false).Find(&achievements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check achievements!", nil)
	}

	var earnedIDs []uint
	db.Model(&models.UserAchievement{}).Where("user_id = ?", userID).
		Pluck("achievement_id", &earnedIDs)
	earned := make(map[uint]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	streak, err := utils.CurrentStreak(db, userID)
	if err != nil {
		log.Printf("Error computing streak for user %d: %v", userID, err)
		streak = 0
	}

	var completedPaths int64
	db.Model(&pathModels.UserLearningPath{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&completedPaths)

	var completedCards int64
	db.Model(&pathModels.UserCard{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&completedCards)

	newlyEarned := []models.Achievement{}
	for _, achievement := range achievements {
		if earned[achievement.ID] {
			continue
		}

		var criteria achievementCriteria
		if len(achievement.Criteria) > 0 {
			if err := json.Unmarshal(achievement.Criteria, &criteria); err != nil {
				log.Printf("Error parsing criteria for achievement %d: %v", achievement.ID, err)
				continue
			}
		}

		met := false
		switch achievement.AchievementType {
		case "streak":
			met = criteria.StreakDays > 0 && streak >= criteria.StreakDays
		case "completion":
			met = criteria.CompletedPaths > 0 && completedPaths >= int64(criteria.CompletedPaths)
		case "milestone":
			met = criteria.CompletedCards > 0 && completedCards >= int64(criteria.CompletedCards)
		}
		if !met {
			continue
		}

		record := models.UserAchievement{UserID: userID, AchievementID: achievement.ID}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error awarding achievement %d to user %d: %v", achievement.ID, userID, err)
			continue
		}
		newlyEarned = append(newlyEarned, achievement)

		var user models.User
		if err := db.First(&user, userID).Error; err == nil {
			go utils.SendAchievementEmail(user.Email, user.Username, achievement.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements checked successfully!", fiber.Map{
		"newly_earned":    newlyEarned,
		"current_streak":  streak,
		"completed_paths": completedPaths,
		"completed_cards": completedCards,
	})
}
