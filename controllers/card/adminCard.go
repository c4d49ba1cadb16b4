package cardController

import (
	"encoding/json"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func CreateCard(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateCard").(*struct {
		Keyword     string   `json:"keyword"`
		Question    string   `json:"question"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
		Difficulty  string   `json:"difficulty"`
		Level       string   `json:"level"`
		Tags        []string `json:"tags"`
	})

	card := pathModels.Card{
		Keyword:     reqData.Keyword,
		Question:    reqData.Question,
		Answer:      reqData.Answer,
		Explanation: reqData.Explanation,
		Difficulty:  reqData.Difficulty,
		Level:       reqData.Level,
		CreatedBy:   "System",
	}
	if len(reqData.Tags) > 0 {
		raw, err := json.Marshal(reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
		}
		card.Tags = datatypes.JSON(raw)
	}

	if err := database.Database.Db.Create(&card).Error; err != nil {
		log.Printf("Error creating card: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card created successfully!", card)
}

func DeleteCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil || cardID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid card id!", nil)
	}

	db := database.Database.Db

	var card pathModels.Card
	if err := db.Where("id = ? AND is_deleted = ?", cardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	if err := db.Model(&card).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting card %d: %v", cardID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Card deleted successfully!", nil)
}

// AttachCardToSection links a card into a template section at the given order
func AttachCardToSection(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	reqData := c.Locals("validatedAttachCard").(*struct {
		CardID     uint `json:"card_id"`
		OrderIndex int  `json:"order_index"`
	})

	db := database.Database.Db

	var section pathModels.CourseSection
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var card pathModels.Card
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Card not found!", nil)
	}

	var existing pathModels.SectionCard
	if err := db.Where("section_id = ? AND card_id = ?", sectionID, reqData.CardID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Card already in section!", existing)
	}

	link := pathModels.SectionCard{
		SectionID:  uint(sectionID),
		CardID:     reqData.CardID,
		OrderIndex: reqData.OrderIndex,
	}
	if err := db.Create(&link).Error; err != nil {
		log.Printf("Error attaching card %d to section %d: %v", reqData.CardID, sectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Card attached successfully!", link)
}
