package sectionController

import (
	"errors"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMySections(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sections []pathModels.UserSection
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", sections)
}

func GetMySectionDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	db := database.Database.Db

	var section pathModels.UserSection
	if err := db.Where("id = ? AND user_id = ?", sectionID, userID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var links []pathModels.UserSectionCard
	if err := db.Where("user_section_id = ?", section.ID).Order("order_index asc").Find(&links).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch section!", nil)
	}

	type cardEntry struct {
		pathModels.Card
		OrderIndex  int  `json:"order_index"`
		IsCustom    bool `json:"is_custom"`
		IsCompleted bool `json:"is_completed"`
	}

	cards := make([]cardEntry, 0, len(links))
	for _, link := range links {
		var card pathModels.Card
		if err := db.Where("id = ?", link.CardID).First(&card).Error; err != nil {
			continue
		}
		cards = append(cards, cardEntry{
			Card:        card,
			OrderIndex:  link.OrderIndex,
			IsCustom:    link.IsCustom,
			IsCompleted: link.IsCompleted,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section fetched successfully!", fiber.Map{
		"section": section,
		"cards":   cards,
	})
}

// CreateCustomSection makes a user-owned section with no template behind it
func CreateCustomSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedCreateSection").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})

	section := pathModels.UserSection{
		UserID:      userID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		log.Printf("Error creating custom section for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// CopyTemplateSection gives the user their own copy of a template section.
// Calling it again for the same template returns the existing copy.
func CopyTemplateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	db := database.Database.Db

	var existing pathModels.UserSection
	if err := db.Where("user_id = ? AND section_template_id = ?", userID, sectionID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Section already copied!", existing)
	}

	var copied *pathModels.UserSection
	txErr := db.Transaction(func(tx *gorm.DB) error {
		section, err := progress.CopySectionToUser(tx, userID, uint(sectionID))
		if err != nil {
			return err
		}
		copied = section
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, progress.ErrTemplateNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section template not found!", nil)
		}
		log.Printf("Error copying section %d for user %d: %v", sectionID, userID, txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to copy section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section copied successfully!", copied)
}

// AddCardToMySection appends a card to a user section as a custom membership
func AddCardToMySection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	reqData := c.Locals("validatedAddCard").(*struct {
		CardID     uint `json:"card_id"`
		OrderIndex *int `json:"order_index"`
	})

	db := database.Database.Db

	var section pathModels.UserSection
	if err := db.Where("id = ? AND user_id = ?", sectionID, userID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var card pathModels.Card
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	var existing pathModels.UserSectionCard
	if err := db.Where("user_section_id = ? AND card_id = ?", section.ID, reqData.CardID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Card already in section!", existing)
	}

	orderIndex := 0
	if reqData.OrderIndex != nil {
		orderIndex = *reqData.OrderIndex
	} else {
		var maxOrder int
		db.Model(&pathModels.UserSectionCard{}).
			Where("user_section_id = ?", section.ID).
			Select("COALESCE(MAX(order_index), -1)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	link := pathModels.UserSectionCard{
		UserSectionID: section.ID,
		CardID:        reqData.CardID,
		OrderIndex:    orderIndex,
		IsCustom:      true,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		// Adding an uncompleted card changes the denominator
		_, err := progress.SectionProgressFromCards(tx, userID, section.ID)
		return err
	})
	if txErr != nil {
		log.Printf("Error adding card %d to section %d: %v", reqData.CardID, section.ID, txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card added successfully!", link)
}

// RemoveCardFromMySection drops a card from a user section and refreshes progress
func RemoveCardFromMySection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}
	cardID, err := c.ParamsInt("cardId")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	db := database.Database.Db

	var section pathModels.UserSection
	if err := db.Where("id = ? AND user_id = ?", sectionID, userID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var link pathModels.UserSectionCard
	if err := db.Where("user_section_id = ? AND card_id = ?", section.ID, cardID).First(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not in section!", nil)
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&link).Error; err != nil {
			return err
		}
		_, err := progress.SectionProgressFromCards(tx, userID, section.ID)
		return err
	})
	if txErr != nil {
		log.Printf("Error removing card %d from section %d: %v", cardID, section.ID, txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card removed successfully!", nil)
}
