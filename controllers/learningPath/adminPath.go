package learningPathController

import (
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/gofiber/fiber/v2"
)

func CreateLearningPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedCreatePath").(*struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		Category        string `json:"category"`
		DifficultyLevel string `json:"difficulty_level"`
		EstimatedDays   int    `json:"estimated_days"`
	})

	var creator models.User
	if err := database.Database.Db.First(&creator, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	learningPath := pathModels.LearningPath{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Category:        reqData.Category,
		DifficultyLevel: reqData.DifficultyLevel,
		EstimatedDays:   reqData.EstimatedDays,
		IsTemplate:      true,
		CreatedBy:       creator.Username,
	}

	if err := database.Database.Db.Create(&learningPath).Error; err != nil {
		log.Printf("Error creating learning path: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path created successfully!", learningPath)
}

func UpdateLearningPath(c *fiber.Ctx) error {
	pathID, err := c.ParamsInt("id")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}

	reqData := c.Locals("validatedUpdatePath").(*struct {
		Title           *string `json:"title"`
		Description     *string `json:"description"`
		Category        *string `json:"category"`
		DifficultyLevel *string `json:"difficulty_level"`
		EstimatedDays   *int    `json:"estimated_days"`
	})

	db := database.Database.Db

	var learningPath pathModels.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&learningPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.DifficultyLevel != nil {
		updates["difficulty_level"] = *reqData.DifficultyLevel
	}
	if reqData.EstimatedDays != nil {
		updates["estimated_days"] = *reqData.EstimatedDays
	}

	if len(updates) > 0 {
		if err := db.Model(&learningPath).Updates(updates).Error; err != nil {
			log.Printf("Error updating learning path %d: %v", pathID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update learning path!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path updated successfully!", learningPath)
}

func DeleteLearningPath(c *fiber.Ctx) error {
	pathID, err := c.ParamsInt("id")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}

	db := database.Database.Db

	var learningPath pathModels.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&learningPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	if err := db.Model(&learningPath).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting learning path %d: %v", pathID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete learning path!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path deleted successfully!", nil)
}

// AttachCourseToPath links an existing course into a template path at the given order
func AttachCourseToPath(c *fiber.Ctx) error {
	pathID, err := c.ParamsInt("id")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}

	reqData := c.Locals("validatedAttachCourse").(*struct {
		CourseID   uint `json:"course_id"`
		OrderIndex int  `json:"order_index"`
	})

	db := database.Database.Db

	var learningPath pathModels.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&learningPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var course pathModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing pathModels.LearningPathCourse
	if err := db.Where("learning_path_id = ? AND course_id = ?", pathID, reqData.CourseID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already attached!", existing)
	}

	link := pathModels.LearningPathCourse{
		LearningPathID: uint(pathID),
		CourseID:       reqData.CourseID,
		OrderIndex:     reqData.OrderIndex,
	}
	if err := db.Create(&link).Error; err != nil {
		log.Printf("Error attaching course %d to path %d: %v", reqData.CourseID, pathID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course attached successfully!", link)
}
