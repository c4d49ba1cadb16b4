package plannerController

import (
	"log"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/middleware"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/progress"
	"github.com/BakariSp/Zero-AI-backend-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateLearningPath kicks off an async AI generation and returns a task id
// the client can poll. The daily paths quota is enforced by middleware.
func GenerateLearningPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedGeneratePath").(*struct {
		Topic     string   `json:"topic"`
		Interests []string `json:"interests"`
	})

	task := models.GenerationTask{
		TaskID: uuid.NewString(),
		UserID: userID,
		Prompt: reqData.Topic,
		Status: models.TaskPending,
	}
	if err := database.Database.Db.Create(&task).Error; err != nil {
		log.Printf("Error creating generation task for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start generation!", nil)
	}

	go runGeneration(task.TaskID, userID, reqData.Topic, reqData.Interests)

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Generation started!", fiber.Map{
		"task_id": task.TaskID,
		"status":  task.Status,
	})
}

func GetGenerationTask(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	taskID := c.Params("taskId")
	if taskID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid task id!", nil)
	}

	var task models.GenerationTask
	if err := database.Database.Db.Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Task not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Task fetched successfully!", task)
}

func runGeneration(taskID string, userID uint, topic string, interests []string) {
	db := database.Database.Db

	db.Model(&models.GenerationTask{}).Where("task_id = ?", taskID).
		Update("status", models.TaskRunning)

	draft, err := utils.GenerateLearningPathDraft(topic, interests)
	if err != nil {
		log.Printf("[PLANNER] generation failed for task %s: %v", taskID, err)
		failTask(taskID, err.Error())
		return
	}

	pathID, err := persistDraft(db, draft)
	if err != nil {
		log.Printf("[PLANNER] persisting draft failed for task %s: %v", taskID, err)
		failTask(taskID, err.Error())
		return
	}

	// Adopt the generated path for its creator right away
	userPath := pathModels.UserLearningPath{UserID: userID, LearningPathID: pathID}
	if err := db.Create(&userPath).Error; err == nil {
		if err := progress.InitializeUserProgressRecords(db, userID, pathID); err != nil {
			log.Printf("[PLANNER] progress init failed for task %s: %v", taskID, err)
		}
	}

	now := time.Now()
	db.Model(&models.GenerationTask{}).Where("task_id = ?", taskID).
		Updates(map[string]interface{}{
			"status":           models.TaskDone,
			"learning_path_id": pathID,
			"finished_at":      now,
		})
}

func failTask(taskID, message string) {
	now := time.Now()
	database.Database.Db.Model(&models.GenerationTask{}).Where("task_id = ?", taskID).
		Updates(map[string]interface{}{
			"status":        models.TaskFailed,
			"error_message": message,
			"finished_at":   now,
		})
}

// persistDraft writes the generated path, courses, sections and cards as
// template rows and returns the new learning path id
func persistDraft(db *gorm.DB, draft *utils.PathDraft) (uint, error) {
	var pathID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		learningPath := pathModels.LearningPath{
			Title:           draft.Title,
			Description:     draft.Description,
			Category:        draft.Category,
			DifficultyLevel: draft.DifficultyLevel,
			EstimatedDays:   draft.EstimatedDays,
			IsTemplate:      true,
			CreatedBy:       "AI Planner",
		}
		if err := tx.Create(&learningPath).Error; err != nil {
			return err
		}
		pathID = learningPath.ID

		for courseIndex, courseDraft := range draft.Courses {
			course := pathModels.Course{
				Title:         courseDraft.Title,
				Description:   courseDraft.Description,
				EstimatedDays: courseDraft.EstimatedDays,
				IsTemplate:    true,
			}
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
			if err := tx.Create(&pathModels.LearningPathCourse{
				LearningPathID: learningPath.ID,
				CourseID:       course.ID,
				OrderIndex:     courseIndex,
			}).Error; err != nil {
				return err
			}

			for sectionIndex, sectionDraft := range courseDraft.Sections {
				section := pathModels.CourseSection{
					Title:       sectionDraft.Title,
					Description: sectionDraft.Description,
					OrderIndex:  sectionIndex,
					IsTemplate:  true,
				}
				if err := tx.Create(&section).Error; err != nil {
					return err
				}
				if err := tx.Create(&pathModels.CourseSectionAssociation{
					CourseID:   course.ID,
					SectionID:  section.ID,
					OrderIndex: sectionIndex,
				}).Error; err != nil {
					return err
				}

				for cardIndex, cardDraft := range sectionDraft.Cards {
					card := pathModels.Card{
						Keyword:     cardDraft.Keyword,
						Question:    cardDraft.Question,
						Answer:      cardDraft.Answer,
						Explanation: cardDraft.Explanation,
						Difficulty:  cardDraft.Difficulty,
						CreatedBy:   "AI Planner",
					}
					if err := tx.Create(&card).Error; err != nil {
						return err
					}
					if err := tx.Create(&pathModels.SectionCard{
						SectionID:  section.ID,
						CardID:     card.ID,
						OrderIndex: cardIndex,
					}).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	return pathID, err
}
