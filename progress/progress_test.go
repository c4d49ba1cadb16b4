package progress

import (
	"fmt"
	"strings"
	"testing"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"
	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test, named after the test so
	// parallel tests never collide
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

// fixture is a seeded template hierarchy: one learning path holding one
// course, with sections and cards under the course
type fixture struct {
	user     models.User
	path     pathModels.LearningPath
	course   pathModels.Course
	sections []pathModels.CourseSection
	cards    [][]pathModels.Card // indexed by section
}

func seedPathWithCourse(t *testing.T, db *gorm.DB, sectionCount, cardsPerSection int) *fixture {
	t.Helper()

	f := &fixture{}
	f.user = models.User{Email: "learner@example.com", Username: "learner", Password: "x"}
	require.NoError(t, db.Create(&f.user).Error)

	f.path = pathModels.LearningPath{Title: "Go Fundamentals", Category: "programming"}
	require.NoError(t, db.Create(&f.path).Error)

	f.course = pathModels.Course{Title: "Basics"}
	require.NoError(t, db.Create(&f.course).Error)
	require.NoError(t, db.Create(&pathModels.LearningPathCourse{
		LearningPathID: f.path.ID, CourseID: f.course.ID, OrderIndex: 0,
	}).Error)

	for s := 0; s < sectionCount; s++ {
		section := pathModels.CourseSection{Title: fmt.Sprintf("Section %d", s+1), OrderIndex: s}
		require.NoError(t, db.Create(&section).Error)
		require.NoError(t, db.Create(&pathModels.CourseSectionAssociation{
			CourseID: f.course.ID, SectionID: section.ID, OrderIndex: s,
		}).Error)
		f.sections = append(f.sections, section)

		var sectionCards []pathModels.Card
		for c := 0; c < cardsPerSection; c++ {
			card := pathModels.Card{
				Keyword:  fmt.Sprintf("kw-%d-%d", s, c),
				Question: "q", Answer: "a",
			}
			require.NoError(t, db.Create(&card).Error)
			require.NoError(t, db.Create(&pathModels.SectionCard{
				SectionID: section.ID, CardID: card.ID, OrderIndex: c,
			}).Error)
			sectionCards = append(sectionCards, card)
		}
		f.cards = append(f.cards, sectionCards)
	}

	return f
}

func adoptPath(t *testing.T, db *gorm.DB, f *fixture) {
	t.Helper()
	require.NoError(t, db.Create(&pathModels.UserLearningPath{
		UserID: f.user.ID, LearningPathID: f.path.ID,
	}).Error)
	require.NoError(t, InitializeUserProgressRecords(db, f.user.ID, f.path.ID))
}

func userSectionFor(t *testing.T, db *gorm.DB, userID, templateID uint) pathModels.UserSection {
	t.Helper()
	var userSection pathModels.UserSection
	require.NoError(t, db.Where("user_id = ? AND section_template_id = ?", userID, templateID).
		First(&userSection).Error)
	return userSection
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
