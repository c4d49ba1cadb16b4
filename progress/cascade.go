package progress

import (
	"errors"
	"log"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"gorm.io/gorm"
)

// SectionUpdate reports one user section touched by a cascade
type SectionUpdate struct {
	UserSectionID uint    `json:"id"`
	Progress      float64 `json:"progress"`
	Created       bool    `json:"created,omitempty"`
}

// CourseUpdate reports one course touched by a cascade
type CourseUpdate struct {
	CourseID uint    `json:"course_id"`
	Progress float64 `json:"progress"`
	Created  bool    `json:"created,omitempty"`
}

// PathUpdate reports one learning path touched by a cascade
type PathUpdate struct {
	LearningPathID uint    `json:"learning_path_id"`
	Progress       float64 `json:"progress"`
}

// CascadeSummary describes everything a cascade touched
type CascadeSummary struct {
	SectionsUpdated      []SectionUpdate `json:"sections_updated"`
	CoursesUpdated       []CourseUpdate  `json:"courses_updated"`
	LearningPathsUpdated []PathUpdate    `json:"learning_paths_updated"`
	CardsCreated         int             `json:"cards_created"`
}

// CascadeProgressUpdate makes the whole hierarchy around one card consistent
// after its global completion flag changed: it materializes missing user
// sections, backfills missing user_cards rows, then walks section, course and
// learning path aggregates bottom-up, all inside one transaction.
//
// The walk is best-effort: a persistence error on one item is logged and that
// item skipped, because this path exists to repair inconsistent state
// opportunistically. An empty summary is a valid result when the card is not
// reachable by this user.
func CascadeProgressUpdate(db *gorm.DB, userID, cardID uint) (*CascadeSummary, error) {
	summary := &CascadeSummary{
		SectionsUpdated:      []SectionUpdate{},
		CoursesUpdated:       []CourseUpdate{},
		LearningPathsUpdated: []PathUpdate{},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1. Every template section containing this card
		var templateSectionIDs []uint
		if err := tx.Model(&pathModels.SectionCard{}).
			Where("card_id = ?", cardID).
			Pluck("section_id", &templateSectionIDs).Error; err != nil {
			return err
		}

		// Every user section of this user already containing this card
		var linkedSectionIDs []uint
		if err := tx.Model(&pathModels.UserSectionCard{}).
			Where("card_id = ?", cardID).
			Pluck("user_section_id", &linkedSectionIDs).Error; err != nil {
			return err
		}

		userSectionIDs := []uint{}
		existingTemplateIDs := make(map[uint]bool)
		if len(linkedSectionIDs) > 0 {
			var userSections []pathModels.UserSection
			if err := tx.Where("id IN ? AND user_id = ?", linkedSectionIDs, userID).
				Find(&userSections).Error; err != nil {
				return err
			}
			for _, userSection := range userSections {
				userSectionIDs = append(userSectionIDs, userSection.ID)
				if userSection.SectionTemplateID != nil {
					existingTemplateIDs[*userSection.SectionTemplateID] = true
				}
			}
		}

		// 2. Materialize user sections for templates the user does not have yet
		for _, templateID := range templateSectionIDs {
			if existingTemplateIDs[templateID] {
				continue
			}
			userSection, err := CopySectionToUser(tx, userID, templateID)
			if err != nil {
				log.Printf("[PROGRESS] Cascade: failed to copy section %d for user %d: %v", templateID, userID, err)
				continue
			}
			userSectionIDs = append(userSectionIDs, userSection.ID)
			summary.SectionsUpdated = append(summary.SectionsUpdated, SectionUpdate{
				UserSectionID: userSection.ID,
				Created:       true,
			})
		}

		// 3. Backfill user_cards rows for every card in the sections in scope.
		// A user section can reference cards added to the template after the
		// copy was made, or gaps left by earlier partial failures.
		seenCardIDs := make(map[uint]bool)
		for _, userSectionID := range userSectionIDs {
			var memberCardIDs []uint
			if err := tx.Model(&pathModels.UserSectionCard{}).
				Where("user_section_id = ?", userSectionID).
				Pluck("card_id", &memberCardIDs).Error; err != nil {
				log.Printf("[PROGRESS] Cascade: failed to list cards of section %d: %v", userSectionID, err)
				continue
			}
			unseen := make([]uint, 0, len(memberCardIDs))
			for _, id := range memberCardIDs {
				if !seenCardIDs[id] {
					seenCardIDs[id] = true
					unseen = append(unseen, id)
				}
			}
			if len(unseen) == 0 {
				continue
			}

			var existingIDs []uint
			if err := tx.Model(&pathModels.UserCard{}).
				Where("user_id = ? AND card_id IN ?", userID, unseen).
				Pluck("card_id", &existingIDs).Error; err != nil {
				log.Printf("[PROGRESS] Cascade: failed to check user cards for section %d: %v", userSectionID, err)
				continue
			}
			for _, missingID := range missingIDs(unseen, existingIDs) {
				if err := tx.Create(&pathModels.UserCard{UserID: userID, CardID: missingID}).Error; err != nil {
					log.Printf("[PROGRESS] Cascade: failed to create user card %d for user %d: %v", missingID, userID, err)
					continue
				}
				summary.CardsCreated++
			}
		}

		// 4. Recompute progress for every user section in scope
		for _, userSectionID := range userSectionIDs {
			newProgress, err := SectionProgressFromCards(tx, userID, userSectionID)
			if err != nil {
				log.Printf("[PROGRESS] Cascade: failed to update section %d for user %d: %v", userSectionID, userID, err)
				continue
			}
			merged := false
			for i := range summary.SectionsUpdated {
				if summary.SectionsUpdated[i].UserSectionID == userSectionID {
					summary.SectionsUpdated[i].Progress = newProgress
					merged = true
					break
				}
			}
			if !merged {
				summary.SectionsUpdated = append(summary.SectionsUpdated, SectionUpdate{
					UserSectionID: userSectionID,
					Progress:      newProgress,
				})
			}
		}

		// 5. Courses containing any touched template section
		affectedTemplateIDs := make([]uint, 0)
		{
			var touched []pathModels.UserSection
			if len(userSectionIDs) > 0 {
				if err := tx.Where("id IN ?", userSectionIDs).Find(&touched).Error; err != nil {
					return err
				}
			}
			seen := make(map[uint]bool)
			for _, userSection := range touched {
				if userSection.SectionTemplateID != nil && !seen[*userSection.SectionTemplateID] {
					seen[*userSection.SectionTemplateID] = true
					affectedTemplateIDs = append(affectedTemplateIDs, *userSection.SectionTemplateID)
				}
			}
		}

		affectedCourseIDs := make([]uint, 0)
		if len(affectedTemplateIDs) > 0 {
			if err := tx.Model(&pathModels.CourseSectionAssociation{}).
				Distinct("course_id").
				Where("section_id IN ?", affectedTemplateIDs).
				Pluck("course_id", &affectedCourseIDs).Error; err != nil {
				return err
			}
		}

		for _, courseID := range affectedCourseIDs {
			var existing pathModels.UserCourse
			created := false
			if err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).
				First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
				created = true
			}
			newProgress, err := CourseProgressFromSections(tx, userID, courseID, true)
			if err != nil {
				log.Printf("[PROGRESS] Cascade: failed to update course %d for user %d: %v", courseID, userID, err)
				continue
			}
			summary.CoursesUpdated = append(summary.CoursesUpdated, CourseUpdate{
				CourseID: courseID,
				Progress: newProgress,
				Created:  created,
			})
		}

		// 6. Learning paths containing a touched course, or directly containing
		// a touched section. Paths the user has not adopted are skipped; a card
		// toggle never adopts a path as a side effect.
		affectedPathIDs := make(map[uint]bool)
		if len(affectedCourseIDs) > 0 {
			var pathIDs []uint
			if err := tx.Model(&pathModels.LearningPathCourse{}).
				Distinct("learning_path_id").
				Where("course_id IN ?", affectedCourseIDs).
				Pluck("learning_path_id", &pathIDs).Error; err != nil {
				return err
			}
			for _, id := range pathIDs {
				affectedPathIDs[id] = true
			}
		}
		if len(affectedTemplateIDs) > 0 {
			var directSections []pathModels.CourseSection
			if err := tx.Where("id IN ? AND learning_path_id IS NOT NULL", affectedTemplateIDs).
				Find(&directSections).Error; err != nil {
				return err
			}
			for _, section := range directSections {
				if section.LearningPathID != nil {
					affectedPathIDs[*section.LearningPathID] = true
				}
			}
		}

		for learningPathID := range affectedPathIDs {
			newProgress, err := PathProgressFromCourses(tx, userID, learningPathID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("[PROGRESS] Cascade: learning path %d not adopted by user %d, skipping", learningPathID, userID)
				} else {
					log.Printf("[PROGRESS] Cascade: failed to update learning path %d for user %d: %v", learningPathID, userID, err)
				}
				continue
			}
			summary.LearningPathsUpdated = append(summary.LearningPathsUpdated, PathUpdate{
				LearningPathID: learningPathID,
				Progress:       newProgress,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
