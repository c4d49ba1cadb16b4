package progress

import (
	"errors"
	"time"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"gorm.io/gorm"
)

// ToggleResult carries the three freshly persisted percentages back to the UI
type ToggleResult struct {
	SectionProgress      float64 `json:"section_progress"`
	CourseProgress       float64 `json:"course_progress"`
	LearningPathProgress float64 `json:"learning_path_progress"`
}

// SetCardCompletion flips one card's completion state within one
// path/section/card context and returns the recomputed section, course and
// learning path percentages. sectionID is a template section id.
//
// Unlike CascadeProgressUpdate this path is strict: it never materializes
// missing user copies, any precondition failure aborts the whole operation,
// and nothing is partially applied. The section-scoped and global completion
// flags are never observable in a diverged state after the call commits.
func SetCardCompletion(db *gorm.DB, userID, learningPathID, sectionID, cardID uint, isCompleted bool) (*ToggleResult, error) {
	result := &ToggleResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1. Resolve the user's copy of the template section
		var userSection pathModels.UserSection
		if err := tx.Where("user_id = ? AND section_template_id = ?", userID, sectionID).
			First(&userSection).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSectionNotFound
			}
			return err
		}

		// 2. The card must be linked to that section
		var link pathModels.UserSectionCard
		if err := tx.Where("user_section_id = ? AND card_id = ?", userSection.ID, cardID).
			First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotInSection
			}
			return err
		}

		// 3. Flip both completion flags together
		if err := tx.Model(&link).Update("is_completed", isCompleted).Error; err != nil {
			return err
		}

		var userCard pathModels.UserCard
		err := tx.Where("user_id = ? AND card_id = ?", userID, cardID).First(&userCard).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userCard = pathModels.UserCard{UserID: userID, CardID: cardID, IsCompleted: isCompleted}
			if isCompleted {
				now := time.Now()
				userCard.CompletedAt = &now
			}
			if err := tx.Create(&userCard).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			updates := map[string]interface{}{"is_completed": isCompleted}
			if isCompleted && userCard.CompletedAt == nil {
				now := time.Now()
				updates["completed_at"] = &now
			}
			if err := tx.Model(&userCard).Updates(updates).Error; err != nil {
				return err
			}
		}

		// 4. Section aggregate
		sectionProgress, err := SectionProgressFromCards(tx, userID, userSection.ID)
		if err != nil {
			return err
		}
		result.SectionProgress = sectionProgress

		// 5. Course aggregate, read-only with respect to materialization: a
		// missing UserCourse is reported as its computed value, not created here
		var assoc pathModels.CourseSectionAssociation
		err = tx.Where("section_id = ?", sectionID).First(&assoc).Error
		if err == nil {
			courseProgress, err := CourseProgressFromSections(tx, userID, assoc.CourseID, false)
			if err != nil {
				return err
			}
			result.CourseProgress = courseProgress
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 6. Path aggregate, only when the user has adopted the path
		pathProgress, err := PathProgressFromCourses(tx, userID, learningPathID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			result.LearningPathProgress = pathProgress
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
