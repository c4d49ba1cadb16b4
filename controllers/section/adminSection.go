package sectionController

import (
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/gofiber/fiber/v2"
)

// CreateTemplateSection makes a shared template section, optionally hung
// directly off a learning path
func CreateTemplateSection(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateTemplateSection").(*struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		LearningPathID *uint  `json:"learning_path_id"`
		OrderIndex     int    `json:"order_index"`
		EstimatedDays  int    `json:"estimated_days"`
	})

	db := database.Database.Db

	if reqData.LearningPathID != nil {
		var learningPath pathModels.LearningPath
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.LearningPathID, false).
			First(&learningPath).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
	}

	section := pathModels.CourseSection{
		LearningPathID: reqData.LearningPathID,
		Title:          reqData.Title,
		Description:    reqData.Description,
		OrderIndex:     reqData.OrderIndex,
		EstimatedDays:  reqData.EstimatedDays,
		IsTemplate:     true,
	}

	if err := db.Create(&section).Error; err != nil {
		log.Printf("Error creating template section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

func DeleteTemplateSection(c *fiber.Ctx) error {
	sectionID, err := c.ParamsInt("id")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
	}

	db := database.Database.Db

	var section pathModels.CourseSection
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if err := db.Model(&section).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting template section %d: %v", sectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
