package progress

import (
	"testing"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionProgressFromCards(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 4)
	adoptPath(t, db, f)
	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)

	require.NoError(t, db.Model(&pathModels.UserCard{}).
		Where("user_id = ? AND card_id = ?", f.user.ID, f.cards[0][0].ID).
		Update("is_completed", true).Error)

	progress, err := SectionProgressFromCards(db, f.user.ID, userSection.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, progress)

	refreshed := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.Equal(t, 25.0, refreshed.Progress)
}

func TestSectionProgressNoCards(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 0)
	adoptPath(t, db, f)
	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)

	progress, err := SectionProgressFromCards(db, f.user.ID, userSection.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)
}

func TestSectionProgressUnknownSection(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	_, err := SectionProgressFromCards(db, f.user.ID, 99999)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestCourseProgressCountsUnmaterializedSectionsAsZero(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	// Only section 1 has progress; section 2 is at 0
	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	require.NoError(t, db.Model(&userSection).Update("progress", 100.0).Error)

	progress, err := CourseProgressFromSections(db, f.user.ID, f.course.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 50.0, progress)

	// Drop the user's copy of section 2 entirely: it still counts as 0
	require.NoError(t, db.Where("user_id = ? AND section_template_id = ?",
		f.user.ID, f.sections[1].ID).Delete(&pathModels.UserSection{}).Error)

	progress, err = CourseProgressFromSections(db, f.user.ID, f.course.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 50.0, progress)
}

func TestCourseProgressNoUserCourseReadOnly(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	// No adoption, no user rows: computed value returned, nothing persisted
	progress, err := CourseProgressFromSections(db, f.user.ID, f.course.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)
	assert.EqualValues(t, 0, countRows(t, db, &pathModels.UserCourse{}, "user_id = ?", f.user.ID))
}

func TestCourseProgressCreateMissing(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	_, err := CourseProgressFromSections(db, f.user.ID, f.course.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countRows(t, db, &pathModels.UserCourse{}, "user_id = ?", f.user.ID))
}

func TestCourseCompletedAtLatches(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)
	adoptPath(t, db, f)

	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	require.NoError(t, db.Model(&userSection).Update("progress", 100.0).Error)

	progress, err := CourseProgressFromSections(db, f.user.ID, f.course.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 100.0, progress)

	var userCourse pathModels.UserCourse
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		First(&userCourse).Error)
	require.NotNil(t, userCourse.CompletedAt)
	completedAt := *userCourse.CompletedAt

	// Progress regressing below 100 does not clear completed_at
	require.NoError(t, db.Model(&userSection).Update("progress", 50.0).Error)
	progress, err = CourseProgressFromSections(db, f.user.ID, f.course.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 50.0, progress)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		First(&userCourse).Error)
	require.NotNil(t, userCourse.CompletedAt)
	assert.Equal(t, completedAt.Unix(), userCourse.CompletedAt.Unix())
}

func TestPathProgressEmptyPath(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	empty := pathModels.LearningPath{Title: "Empty"}
	require.NoError(t, db.Create(&empty).Error)
	require.NoError(t, db.Create(&pathModels.UserLearningPath{
		UserID: f.user.ID, LearningPathID: empty.ID,
	}).Error)

	progress, err := PathProgressFromCourses(db, f.user.ID, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)
}

func TestPathProgressIncludesDirectSections(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)
	adoptPath(t, db, f)

	// One direct section next to the course: N = 2
	direct := pathModels.CourseSection{Title: "Direct", LearningPathID: &f.path.ID}
	require.NoError(t, db.Create(&direct).Error)
	directID := direct.ID
	require.NoError(t, db.Create(&pathModels.UserSection{
		UserID: f.user.ID, SectionTemplateID: &directID, Title: direct.Title, Progress: 100,
	}).Error)

	require.NoError(t, db.Model(&pathModels.UserCourse{}).
		Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		Update("progress", 50.0).Error)

	progress, err := PathProgressFromCourses(db, f.user.ID, f.path.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, progress)
}

func TestPathProgressNotAdopted(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	_, err := PathProgressFromCourses(db, f.user.ID, f.path.ID)
	assert.Error(t, err)
}
