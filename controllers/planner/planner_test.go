package plannerController

import (
	"fmt"
	"strings"
	"testing"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"
	"github.com/BakariSp/Zero-AI-backend-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPlannerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func sampleDraft() *utils.PathDraft {
	return &utils.PathDraft{
		Title:           "Intro to Databases",
		Description:     "Relational foundations",
		Category:        "programming",
		DifficultyLevel: "beginner",
		EstimatedDays:   14,
		Courses: []utils.CourseDraft{
			{
				Title: "SQL Basics",
				Sections: []utils.SectionDraft{
					{
						Title: "Queries",
						Cards: []utils.CardDraft{
							{Keyword: "SELECT", Question: "What does SELECT do?", Answer: "Reads rows"},
							{Keyword: "WHERE", Question: "What does WHERE do?", Answer: "Filters rows"},
						},
					},
					{
						Title: "Joins",
						Cards: []utils.CardDraft{
							{Keyword: "JOIN", Question: "What does JOIN do?", Answer: "Combines tables"},
						},
					},
				},
			},
		},
	}
}

func TestPersistDraftWritesTemplateTree(t *testing.T) {
	db := setupPlannerTestDB(t)

	pathID, err := persistDraft(db, sampleDraft())
	require.NoError(t, err)
	require.NotZero(t, pathID)

	var learningPath pathModels.LearningPath
	require.NoError(t, db.First(&learningPath, pathID).Error)
	assert.Equal(t, "Intro to Databases", learningPath.Title)
	assert.Equal(t, "AI Planner", learningPath.CreatedBy)
	assert.True(t, learningPath.IsTemplate)

	var courseLinks []pathModels.LearningPathCourse
	require.NoError(t, db.Where("learning_path_id = ?", pathID).Find(&courseLinks).Error)
	require.Len(t, courseLinks, 1)

	var sectionLinks []pathModels.CourseSectionAssociation
	require.NoError(t, db.Where("course_id = ?", courseLinks[0].CourseID).
		Order("order_index asc").Find(&sectionLinks).Error)
	require.Len(t, sectionLinks, 2)

	var cardLinks []pathModels.SectionCard
	require.NoError(t, db.Where("section_id = ?", sectionLinks[0].SectionID).Find(&cardLinks).Error)
	assert.Len(t, cardLinks, 2)

	var card pathModels.Card
	require.NoError(t, db.First(&card, cardLinks[0].CardID).Error)
	assert.Equal(t, "AI Planner", card.CreatedBy)
}

func TestPersistDraftEmptyCourses(t *testing.T) {
	db := setupPlannerTestDB(t)

	draft := sampleDraft()
	draft.Courses = nil

	pathID, err := persistDraft(db, draft)
	require.NoError(t, err)

	var courseLinks []pathModels.LearningPathCourse
	require.NoError(t, db.Where("learning_path_id = ?", pathID).Find(&courseLinks).Error)
	assert.Empty(t, courseLinks)
}
