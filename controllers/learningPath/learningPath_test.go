package learningPathController

import (
	"fmt"
	"strings"
	"testing"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPathTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestExpandCoursesKeepsOrderAndSkipsDeleted(t *testing.T) {
	db := setupPathTestDB(t)

	learningPath := pathModels.LearningPath{Title: "Web Dev", CreatedBy: "admin"}
	require.NoError(t, db.Create(&learningPath).Error)

	first := pathModels.Course{Title: "HTML"}
	second := pathModels.Course{Title: "CSS"}
	deleted := pathModels.Course{Title: "Flash", IsDeleted: true}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&deleted).Error)

	// Attach out of creation order to prove order_index wins
	require.NoError(t, db.Create(&pathModels.LearningPathCourse{
		LearningPathID: learningPath.ID, CourseID: second.ID, OrderIndex: 1,
	}).Error)
	require.NoError(t, db.Create(&pathModels.LearningPathCourse{
		LearningPathID: learningPath.ID, CourseID: first.ID, OrderIndex: 0,
	}).Error)
	require.NoError(t, db.Create(&pathModels.LearningPathCourse{
		LearningPathID: learningPath.ID, CourseID: deleted.ID, OrderIndex: 2,
	}).Error)

	courses, err := expandCourses(learningPath.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "HTML", courses[0].Title)
	assert.Equal(t, "CSS", courses[1].Title)
}

func TestExpandSectionIncludesOrderedCards(t *testing.T) {
	db := setupPathTestDB(t)

	section := pathModels.CourseSection{Title: "Selectors"}
	require.NoError(t, db.Create(&section).Error)

	late := pathModels.Card{Keyword: "pseudo", Question: "q", Answer: "a"}
	early := pathModels.Card{Keyword: "class", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&late).Error)
	require.NoError(t, db.Create(&early).Error)

	require.NoError(t, db.Create(&pathModels.SectionCard{
		SectionID: section.ID, CardID: late.ID, OrderIndex: 1,
	}).Error)
	require.NoError(t, db.Create(&pathModels.SectionCard{
		SectionID: section.ID, CardID: early.ID, OrderIndex: 0,
	}).Error)

	expanded, err := expandSection(section.ID)
	require.NoError(t, err)
	require.Len(t, expanded.Cards, 2)
	assert.Equal(t, "class", expanded.Cards[0].Keyword)
	assert.Equal(t, "pseudo", expanded.Cards[1].Keyword)
}

func TestExpandDirectSections(t *testing.T) {
	db := setupPathTestDB(t)

	learningPath := pathModels.LearningPath{Title: "Standalone", CreatedBy: "admin"}
	require.NoError(t, db.Create(&learningPath).Error)

	direct := pathModels.CourseSection{LearningPathID: &learningPath.ID, Title: "Only Section"}
	require.NoError(t, db.Create(&direct).Error)

	sections, err := expandDirectSections(learningPath.ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Only Section", sections[0].Title)
}
