package progress

import (
	"errors"
	"log"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"gorm.io/gorm"
)

// CopySectionToUser creates a user's copy of a template section and copies
// every template card link into user_section_cards, preserving order_index.
// It does not check whether a copy already exists; callers wanting
// find-or-create semantics must look up the (user, template) pair first.
// Runs on whatever handle it is given, so it can participate in a caller's
// transaction.
func CopySectionToUser(tx *gorm.DB, userID, sectionID uint) (*pathModels.UserSection, error) {
	var template pathModels.CourseSection
	if err := tx.Where("id = ? AND is_deleted = ?", sectionID, false).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	templateID := template.ID
	userSection := pathModels.UserSection{
		UserID:            userID,
		SectionTemplateID: &templateID,
		Title:             template.Title,
		Description:       template.Description,
	}
	if err := tx.Create(&userSection).Error; err != nil {
		return nil, err
	}

	var assocs []pathModels.SectionCard
	if err := tx.Where("section_id = ?", sectionID).Order("order_index asc").Find(&assocs).Error; err != nil {
		return nil, err
	}

	if len(assocs) > 0 {
		links := make([]pathModels.UserSectionCard, 0, len(assocs))
		for _, assoc := range assocs {
			links = append(links, pathModels.UserSectionCard{
				UserSectionID: userSection.ID,
				CardID:        assoc.CardID,
				OrderIndex:    assoc.OrderIndex,
				IsCustom:      false,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return nil, err
		}
	}

	log.Printf("[PROGRESS] Copied section %d to user %d as user section %d (%d cards)",
		sectionID, userID, userSection.ID, len(assocs))

	return &userSection, nil
}

// InitializeUserProgressRecords populates every per-user table reachable from
// a learning path: user_courses, user_sections, user_section_cards and
// user_cards. It is idempotent; re-invocation only fills gaps and never
// duplicates or resets existing progress. Lookups are batched per level so
// cost stays linear in the hierarchy size.
func InitializeUserProgressRecords(db *gorm.DB, userID, learningPathID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var lp pathModels.LearningPath
		if err := tx.Where("id = ? AND is_deleted = ?", learningPathID, false).First(&lp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTemplateNotFound
			}
			return err
		}

		// 1. Courses in the path
		var courseIDs []uint
		if err := tx.Model(&pathModels.LearningPathCourse{}).
			Where("learning_path_id = ?", learningPathID).
			Pluck("course_id", &courseIDs).Error; err != nil {
			return err
		}

		if len(courseIDs) > 0 {
			var existingCourseIDs []uint
			if err := tx.Model(&pathModels.UserCourse{}).
				Where("user_id = ? AND course_id IN ?", userID, courseIDs).
				Pluck("course_id", &existingCourseIDs).Error; err != nil {
				return err
			}
			missing := missingIDs(courseIDs, existingCourseIDs)
			if len(missing) > 0 {
				newCourses := make([]pathModels.UserCourse, 0, len(missing))
				for _, courseID := range missing {
					newCourses = append(newCourses, pathModels.UserCourse{UserID: userID, CourseID: courseID})
				}
				if err := tx.Create(&newCourses).Error; err != nil {
					return err
				}
			}
		}

		// 2. Sections reachable from the path: attached directly or via a course
		sectionIDSet := make(map[uint]bool)

		var directSectionIDs []uint
		if err := tx.Model(&pathModels.CourseSection{}).
			Where("learning_path_id = ? AND is_deleted = ?", learningPathID, false).
			Pluck("id", &directSectionIDs).Error; err != nil {
			return err
		}
		for _, id := range directSectionIDs {
			sectionIDSet[id] = true
		}

		if len(courseIDs) > 0 {
			var courseSectionIDs []uint
			if err := tx.Model(&pathModels.CourseSectionAssociation{}).
				Where("course_id IN ?", courseIDs).
				Pluck("section_id", &courseSectionIDs).Error; err != nil {
				return err
			}
			for _, id := range courseSectionIDs {
				sectionIDSet[id] = true
			}
		}

		sectionIDs := make([]uint, 0, len(sectionIDSet))
		for id := range sectionIDSet {
			sectionIDs = append(sectionIDs, id)
		}

		if len(sectionIDs) > 0 {
			var existingTemplateIDs []uint
			if err := tx.Model(&pathModels.UserSection{}).
				Where("user_id = ? AND section_template_id IN ?", userID, sectionIDs).
				Pluck("section_template_id", &existingTemplateIDs).Error; err != nil {
				return err
			}
			missing := missingIDs(sectionIDs, existingTemplateIDs)
			if len(missing) > 0 {
				var templates []pathModels.CourseSection
				if err := tx.Where("id IN ?", missing).Find(&templates).Error; err != nil {
					return err
				}
				newSections := make([]pathModels.UserSection, 0, len(templates))
				for _, template := range templates {
					templateID := template.ID
					newSections = append(newSections, pathModels.UserSection{
						UserID:            userID,
						SectionTemplateID: &templateID,
						Title:             template.Title,
						Description:       template.Description,
					})
				}
				if len(newSections) > 0 {
					if err := tx.Create(&newSections).Error; err != nil {
						return err
					}
				}
			}
		}

		// 3. Section-card links for every user section created from these templates
		cardIDSet := make(map[uint]bool)
		if len(sectionIDs) > 0 {
			var templateLinks []pathModels.SectionCard
			if err := tx.Where("section_id IN ?", sectionIDs).Find(&templateLinks).Error; err != nil {
				return err
			}
			linksBySection := make(map[uint][]pathModels.SectionCard)
			for _, link := range templateLinks {
				linksBySection[link.SectionID] = append(linksBySection[link.SectionID], link)
				cardIDSet[link.CardID] = true
			}

			var userSections []pathModels.UserSection
			if err := tx.Where("user_id = ? AND section_template_id IN ?", userID, sectionIDs).
				Find(&userSections).Error; err != nil {
				return err
			}

			for _, userSection := range userSections {
				if userSection.SectionTemplateID == nil {
					continue
				}
				templateLinks := linksBySection[*userSection.SectionTemplateID]
				if len(templateLinks) == 0 {
					continue
				}

				var existingCardIDs []uint
				if err := tx.Model(&pathModels.UserSectionCard{}).
					Where("user_section_id = ?", userSection.ID).
					Pluck("card_id", &existingCardIDs).Error; err != nil {
					return err
				}
				existing := make(map[uint]bool, len(existingCardIDs))
				for _, id := range existingCardIDs {
					existing[id] = true
				}

				newLinks := make([]pathModels.UserSectionCard, 0)
				for _, link := range templateLinks {
					if existing[link.CardID] {
						continue
					}
					newLinks = append(newLinks, pathModels.UserSectionCard{
						UserSectionID: userSection.ID,
						CardID:        link.CardID,
						OrderIndex:    link.OrderIndex,
						IsCustom:      false,
					})
				}
				if len(newLinks) > 0 {
					if err := tx.Create(&newLinks).Error; err != nil {
						return err
					}
				}
			}
		}

		// 4. Global completion rows for every card touched above
		if len(cardIDSet) > 0 {
			cardIDs := make([]uint, 0, len(cardIDSet))
			for id := range cardIDSet {
				cardIDs = append(cardIDs, id)
			}
			var existingCardIDs []uint
			if err := tx.Model(&pathModels.UserCard{}).
				Where("user_id = ? AND card_id IN ?", userID, cardIDs).
				Pluck("card_id", &existingCardIDs).Error; err != nil {
				return err
			}
			missing := missingIDs(cardIDs, existingCardIDs)
			if len(missing) > 0 {
				newCards := make([]pathModels.UserCard, 0, len(missing))
				for _, cardID := range missing {
					newCards = append(newCards, pathModels.UserCard{UserID: userID, CardID: cardID})
				}
				if err := tx.Create(&newCards).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("[PROGRESS] Initialized records for user %d on learning path %d: %d courses, %d sections, %d cards",
			userID, learningPathID, len(courseIDs), len(sectionIDs), len(cardIDSet))
		return nil
	})
}

// missingIDs returns the ids in want that are absent from have
func missingIDs(want, have []uint) []uint {
	haveSet := make(map[uint]bool, len(have))
	for _, id := range have {
		haveSet[id] = true
	}
	missing := make([]uint, 0)
	for _, id := range want {
		if !haveSet[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
