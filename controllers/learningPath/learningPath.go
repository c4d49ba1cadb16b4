package learningPathController

import (
	"errors"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/progress"

	"github.com/gofiber/fiber/v2"
)

// SectionWithCards is a template section expanded with its ordered cards
type SectionWithCards struct {
	pathModels.CourseSection
	Cards []pathModels.Card `json:"cards"`
}

// CourseWithSections is a template course expanded with its ordered sections
type CourseWithSections struct {
	pathModels.Course
	Sections []SectionWithCards `json:"sections"`
}

func GetAllLearningPaths(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&pathModels.LearningPath{}).
		Where("is_deleted = ? AND is_template = ?", false, true)

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		db = db.Where("difficulty_level = ?", difficulty)
	}

	var total int64
	db.Count(&total)

	var paths []pathModels.LearningPath
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	response := map[string]interface{}{
		"learning_paths": paths,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", response)
}

func GetLearningPathDetails(c *fiber.Ctx) error {
	pathID, err := c.ParamsInt("id")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}
	db := database.Database.Db

	var learningPath pathModels.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&learningPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	courses, err := expandCourses(uint(pathID))
	if err != nil {
		log.Printf("Error expanding courses for path %d: %v", pathID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning path!", nil)
	}

	directSections, err := expandDirectSections(uint(pathID))
	if err != nil {
		log.Printf("Error expanding direct sections for path %d: %v", pathID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning path!", nil)
	}

	// Adoption state when the caller is authenticated
	var userPath *pathModels.UserLearningPath
	if userID, ok := c.Locals("userId").(uint); ok {
		var adopted pathModels.UserLearningPath
		if err := db.Where("user_id = ? AND learning_path_id = ?", userID, pathID).
			First(&adopted).Error; err == nil {
			userPath = &adopted
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning path fetched successfully!", fiber.Map{
		"learning_path":   learningPath,
		"courses":         courses,
		"direct_sections": directSections,
		"user_path":       userPath,
	})
}

func expandCourses(pathID uint) ([]CourseWithSections, error) {
	db := database.Database.Db

	var links []pathModels.LearningPathCourse
	if err := db.Where("learning_path_id = ?", pathID).Order("order_index asc").Find(&links).Error; err != nil {
		return nil, err
	}

	courses := make([]CourseWithSections, 0, len(links))
	for _, link := range links {
		var course pathModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", link.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		var sectionLinks []pathModels.CourseSectionAssociation
		if err := db.Where("course_id = ?", course.ID).Order("order_index asc").Find(&sectionLinks).Error; err != nil {
			return nil, err
		}

		entry := CourseWithSections{Course: course, Sections: []SectionWithCards{}}
		for _, sectionLink := range sectionLinks {
			section, err := expandSection(sectionLink.SectionID)
			if err != nil {
				continue
			}
			entry.Sections = append(entry.Sections, *section)
		}
		courses = append(courses, entry)
	}
	return courses, nil
}

func expandDirectSections(pathID uint) ([]SectionWithCards, error) {
	db := database.Database.Db

	var sections []pathModels.CourseSection
	if err := db.Where("learning_path_id = ? AND is_deleted = ?", pathID, false).
		Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	expanded := make([]SectionWithCards, 0, len(sections))
	for _, section := range sections {
		entry, err := expandSection(section.ID)
		if err != nil {
			continue
		}
		expanded = append(expanded, *entry)
	}
	return expanded, nil
}

func expandSection(sectionID uint) (*SectionWithCards, error) {
	db := database.Database.Db

	var section pathModels.CourseSection
	if err := db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return nil, err
	}

	var cardLinks []pathModels.SectionCard
	if err := db.Where("section_id = ?", sectionID).Order("order_index asc").Find(&cardLinks).Error; err != nil {
		return nil, err
	}

	entry := SectionWithCards{CourseSection: section, Cards: []pathModels.Card{}}
	for _, cardLink := range cardLinks {
		var card pathModels.Card
		if err := db.Where("id = ? AND is_deleted = ?", cardLink.CardID, false).First(&card).Error; err != nil {
			continue
		}
		entry.Cards = append(entry.Cards, card)
	}
	return &entry, nil
}

// AddPathToUser adopts a template learning path for the authenticated user and
// materializes every per-user progress record underneath it
func AddPathToUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	pathID, err := c.ParamsInt("id")
	if err != nil || pathID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid learning path id!", nil)
	}

	db := database.Database.Db

	var learningPath pathModels.LearningPath
	if err := db.Where("id = ? AND is_deleted = ?", pathID, false).First(&learningPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var existing pathModels.UserLearningPath
	if err := db.Where("user_id = ? AND learning_path_id = ?", userID, pathID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Learning path already added!", existing)
	}

	userPath := pathModels.UserLearningPath{
		UserID:         userID,
		LearningPathID: uint(pathID),
	}
	if err := db.Create(&userPath).Error; err != nil {
		log.Printf("Error adopting learning path %d for user %d: %v", pathID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add learning path!", nil)
	}

	if err := progress.InitializeUserProgressRecords(db, userID, uint(pathID)); err != nil {
		if errors.Is(err, progress.ErrTemplateNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
		}
		log.Printf("Error initializing progress records for user %d on path %d: %v", userID, pathID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initialize progress records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path added successfully!", userPath)
}

// GetMyLearningPaths lists the user's adopted paths with their progress
func GetMyLearningPaths(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var userPaths []pathModels.UserLearningPath
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&userPaths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	type entry struct {
		pathModels.UserLearningPath
		LearningPath pathModels.LearningPath `json:"learning_path"`
	}

	result := make([]entry, 0, len(userPaths))
	for _, userPath := range userPaths {
		var learningPath pathModels.LearningPath
		if err := db.Where("id = ?", userPath.LearningPathID).First(&learningPath).Error; err != nil {
			continue
		}
		result = append(result, entry{UserLearningPath: userPath, LearningPath: learningPath})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", result)
}
