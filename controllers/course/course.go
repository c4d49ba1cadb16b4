package courseController

import (
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCreateCourse").(*struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		EstimatedDays int    `json:"estimated_days"`
	})

	course := pathModels.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		EstimatedDays: reqData.EstimatedDays,
		IsTemplate:    true,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course pathModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var sectionLinks []pathModels.CourseSectionAssociation
	if err := db.Where("course_id = ?", courseID).Order("order_index asc").Find(&sectionLinks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	sections := make([]pathModels.CourseSection, 0, len(sectionLinks))
	for _, link := range sectionLinks {
		var section pathModels.CourseSection
		if err := db.Where("id = ? AND is_deleted = ?", link.SectionID, false).First(&section).Error; err != nil {
			continue
		}
		sections = append(sections, section)
	}

	// Per-user progress when the course has been started
	var userCourse *pathModels.UserCourse
	if userID, ok := c.Locals("userId").(uint); ok {
		var record pathModels.UserCourse
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error; err == nil {
			userCourse = &record
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":      course,
		"sections":    sections,
		"user_course": userCourse,
	})
}

// AttachSectionToCourse links a template section into a course at the given order
func AttachSectionToCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData := c.Locals("validatedAttachSection").(*struct {
		SectionID  uint `json:"section_id"`
		OrderIndex int  `json:"order_index"`
	})

	db := database.Database.Db

	var course pathModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var section pathModels.CourseSection
	if err := db.Where("id = ? AND is_deleted = ?", reqData.SectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var existing pathModels.CourseSectionAssociation
	if err := db.Where("course_id = ? AND section_id = ?", courseID, reqData.SectionID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Section already attached!", existing)
	}

	link := pathModels.CourseSectionAssociation{
		CourseID:   uint(courseID),
		SectionID:  reqData.SectionID,
		OrderIndex: reqData.OrderIndex,
	}
	if err := db.Create(&link).Error; err != nil {
		log.Printf("Error attaching section %d to course %d: %v", reqData.SectionID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to attach section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section attached successfully!", link)
}
