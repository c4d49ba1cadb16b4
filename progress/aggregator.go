package progress

import (
	"errors"
	"log"
	"time"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"gorm.io/gorm"
)

// The aggregator recomputes one node's progress purely from its children's
// already-persisted values; it never looks deeper than one level.
//
// Policy, applied uniformly at every level: children the user has not
// materialized count as 0 and stay in the denominator, progress is persisted
// as float64 with no rounding, and completed_at latches the first time a
// value reaches 100 and is never cleared by a later regression.

// SectionProgressFromCards recomputes a user section's progress from the
// global user_cards completion flags of its member cards and persists it.
// A section with no cards has progress 0.
func SectionProgressFromCards(tx *gorm.DB, userID, userSectionID uint) (float64, error) {
	var userSection pathModels.UserSection
	if err := tx.Where("id = ? AND user_id = ?", userSectionID, userID).First(&userSection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSectionNotFound
		}
		return 0, err
	}

	var cardIDs []uint
	if err := tx.Model(&pathModels.UserSectionCard{}).
		Where("user_section_id = ?", userSectionID).
		Pluck("card_id", &cardIDs).Error; err != nil {
		return 0, err
	}

	newProgress := 0.0
	if len(cardIDs) > 0 {
		var completed int64
		if err := tx.Model(&pathModels.UserCard{}).
			Where("user_id = ? AND card_id IN ? AND is_completed = ?", userID, cardIDs, true).
			Count(&completed).Error; err != nil {
			return 0, err
		}
		newProgress = float64(completed) / float64(len(cardIDs)) * 100
	}

	if err := tx.Model(&userSection).Update("progress", newProgress).Error; err != nil {
		return 0, err
	}

	log.Printf("[PROGRESS] Section %d progress updated to %.2f%% for user %d", userSectionID, newProgress, userID)
	return newProgress, nil
}

// CourseProgressFromSections recomputes a user's course progress as the mean
// of section progress over every template section belonging to the course,
// counting un-materialized sections as 0. When the user has no UserCourse row
// yet, one is created first if createMissing is set; otherwise the computed
// value is returned without being persisted.
func CourseProgressFromSections(tx *gorm.DB, userID, courseID uint, createMissing bool) (float64, error) {
	var templateSectionIDs []uint
	if err := tx.Model(&pathModels.CourseSectionAssociation{}).
		Where("course_id = ?", courseID).
		Pluck("section_id", &templateSectionIDs).Error; err != nil {
		return 0, err
	}

	newProgress := 0.0
	if len(templateSectionIDs) > 0 {
		var userSections []pathModels.UserSection
		if err := tx.Where("user_id = ? AND section_template_id IN ?", userID, templateSectionIDs).
			Find(&userSections).Error; err != nil {
			return 0, err
		}
		total := 0.0
		for _, userSection := range userSections {
			total += userSection.Progress
		}
		newProgress = total / float64(len(templateSectionIDs))
	}

	var userCourse pathModels.UserCourse
	err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&userCourse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createMissing {
			return newProgress, nil
		}
		userCourse = pathModels.UserCourse{UserID: userID, CourseID: courseID}
		if err := tx.Create(&userCourse).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	updates := map[string]interface{}{"progress": newProgress}
	if newProgress >= 100 && userCourse.CompletedAt == nil {
		now := time.Now()
		updates["completed_at"] = &now
	}
	if err := tx.Model(&userCourse).Updates(updates).Error; err != nil {
		return 0, err
	}

	log.Printf("[PROGRESS] Course %d progress updated to %.2f%% for user %d", courseID, newProgress, userID)
	return newProgress, nil
}

// PathProgressFromCourses recomputes a user's learning path progress as the
// mean over every course in the path plus every section attached directly to
// the path, counting missing user rows as 0. A path with no members has
// progress 0. Returns gorm.ErrRecordNotFound when the user has not adopted
// the path; adoption is never created as a side effect.
func PathProgressFromCourses(tx *gorm.DB, userID, learningPathID uint) (float64, error) {
	var userPath pathModels.UserLearningPath
	if err := tx.Where("user_id = ? AND learning_path_id = ?", userID, learningPathID).
		First(&userPath).Error; err != nil {
		return 0, err
	}

	var courseIDs []uint
	if err := tx.Model(&pathModels.LearningPathCourse{}).
		Where("learning_path_id = ?", learningPathID).
		Pluck("course_id", &courseIDs).Error; err != nil {
		return 0, err
	}

	var directSectionIDs []uint
	if err := tx.Model(&pathModels.CourseSection{}).
		Where("learning_path_id = ? AND is_deleted = ?", learningPathID, false).
		Pluck("id", &directSectionIDs).Error; err != nil {
		return 0, err
	}

	totalItems := len(courseIDs) + len(directSectionIDs)
	newProgress := 0.0
	if totalItems > 0 {
		total := 0.0

		if len(courseIDs) > 0 {
			var userCourses []pathModels.UserCourse
			if err := tx.Where("user_id = ? AND course_id IN ?", userID, courseIDs).
				Find(&userCourses).Error; err != nil {
				return 0, err
			}
			for _, userCourse := range userCourses {
				total += userCourse.Progress
			}
		}

		if len(directSectionIDs) > 0 {
			var userSections []pathModels.UserSection
			if err := tx.Where("user_id = ? AND section_template_id IN ?", userID, directSectionIDs).
				Find(&userSections).Error; err != nil {
				return 0, err
			}
			for _, userSection := range userSections {
				total += userSection.Progress
			}
		}

		newProgress = total / float64(totalItems)
	}

	updates := map[string]interface{}{"progress": newProgress}
	if newProgress >= 100 && userPath.CompletedAt == nil {
		now := time.Now()
		updates["completed_at"] = &now
	}
	if err := tx.Model(&userPath).Updates(updates).Error; err != nil {
		return 0, err
	}

	log.Printf("[PROGRESS] Learning path %d progress updated to %.2f%% for user %d", learningPathID, newProgress, userID)
	return newProgress, nil
}
