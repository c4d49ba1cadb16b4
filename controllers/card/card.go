package cardController

import (
	"errors"
	"log"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/progress"

	"github.com/gofiber/fiber/v2"
)

func GetCards(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&pathModels.Card{}).Where("is_deleted = ?", false)

	if keyword := c.Query("keyword"); keyword != "" {
		db = db.Where("keyword LIKE ?", "%"+keyword+"%")
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		db = db.Where("difficulty = ?", difficulty)
	}

	var total int64
	db.Count(&total)

	var cards []pathModels.Card
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&cards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cards fetched successfully!", fiber.Map{
		"cards": cards,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetCardDetails(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	db := database.Database.Db

	var card pathModels.Card
	if err := db.Where("id = ? AND is_deleted = ?", cardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	var userCard *pathModels.UserCard
	if userID, ok := c.Locals("userId").(uint); ok {
		var record pathModels.UserCard
		if err := db.Where("user_id = ? AND card_id = ?", userID, cardID).First(&record).Error; err == nil {
			userCard = &record
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card fetched successfully!", fiber.Map{
		"card":      card,
		"user_card": userCard,
	})
}

// SaveCard adds a card to the user's collection without touching completion
func SaveCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	db := database.Database.Db

	var card pathModels.Card
	if err := db.Where("id = ? AND is_deleted = ?", cardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	var existing pathModels.UserCard
	if err := db.Where("user_id = ? AND card_id = ?", userID, cardID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Card already saved!", existing)
	}

	userCard := pathModels.UserCard{
		UserID: userID,
		CardID: uint(cardID),
	}
	if err := db.Create(&userCard).Error; err != nil {
		log.Printf("Error saving card %d for user %d: %v", cardID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card saved successfully!", userCard)
}

// UpdateSavedCard sets the user's notes and rating on a saved card
func UpdateSavedCard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	reqData := c.Locals("validatedUpdateSavedCard").(*struct {
		Notes            *string `json:"notes"`
		ExpandedExample  *string `json:"expanded_example"`
		DifficultyRating *int    `json:"difficulty_rating"`
		DepthPreference  *string `json:"depth_preference"`
	})

	db := database.Database.Db

	var userCard pathModels.UserCard
	if err := db.Where("user_id = ? AND card_id = ?", userID, cardID).First(&userCard).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Saved card not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Notes != nil {
		updates["notes"] = *reqData.Notes
	}
	if reqData.ExpandedExample != nil {
		updates["expanded_example"] = *reqData.ExpandedExample
	}
	if reqData.DifficultyRating != nil {
		updates["difficulty_rating"] = *reqData.DifficultyRating
	}
	if reqData.DepthPreference != nil {
		updates["depth_preference"] = *reqData.DepthPreference
	}

	if len(updates) > 0 {
		if err := db.Model(&userCard).Updates(updates).Error; err != nil {
			log.Printf("Error updating saved card %d for user %d: %v", cardID, userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update saved card!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Saved card updated successfully!", userCard)
}

// SetCardCompletion toggles one card inside one section of an adopted path and
// rolls the change up to the section, course and path rows
func SetCardCompletion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pathID, err := c.ParamsInt("pathId")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}
	sectionID, err := c.ParamsInt("sectionId")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}
	cardID, err := c.ParamsInt("cardId")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	reqData := c.Locals("validatedCompletion").(*struct {
		IsCompleted *bool `json:"is_completed" validate:"required"`
	})

	result, err := progress.SetCardCompletion(database.Database.Db, userID,
		uint(pathID), uint(sectionID), uint(cardID), *reqData.IsCompleted)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrSectionNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found for this user!", nil)
		case errors.Is(err, progress.ErrCardNotInSection):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found in this section!", nil)
		}
		log.Printf("Error toggling card %d in section %d for user %d: %v", cardID, sectionID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update completion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion updated successfully!", result)
}

// RecalculateCardProgress re-runs the full progress cascade for one card,
// repairing any missing per-user rows on the way up
func RecalculateCardProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	startedAt := time.Now()
	summary, err := progress.CascadeProgressUpdate(database.Database.Db, userID, uint(cardID))
	if err != nil {
		log.Printf("Error cascading progress for card %d user %d: %v", cardID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to recalculate progress!", nil)
	}
	log.Printf("[PROGRESS] cascade for user %d card %d took %s", userID, cardID, time.Since(startedAt))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recalculated successfully!", summary)
}
