package progress

import (
	"testing"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario: one course, two sections of two cards each, freshly adopted
func TestToggleScenario(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	// Everything starts at zero
	var userPath pathModels.UserLearningPath
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", f.user.ID, f.path.ID).
		First(&userPath).Error)
	assert.Equal(t, 0.0, userPath.Progress)

	// One card of four completed: section 50, course 25, path 25
	result, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, f.cards[0][0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.SectionProgress)
	assert.Equal(t, 25.0, result.CourseProgress)
	assert.Equal(t, 25.0, result.LearningPathProgress)

	// Returned values reflect what was committed, not cached state
	refreshed := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.Equal(t, 50.0, refreshed.Progress)
	var userCourse pathModels.UserCourse
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		First(&userCourse).Error)
	assert.Equal(t, 25.0, userCourse.Progress)
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", f.user.ID, f.path.ID).
		First(&userPath).Error)
	assert.Equal(t, 25.0, userPath.Progress)

	// Second card of section 1: section 100, course 50
	result, err = SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, f.cards[0][1].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.SectionProgress)
	assert.Equal(t, 50.0, result.CourseProgress)
	assert.Equal(t, 50.0, result.LearningPathProgress)

	// Finish section 2: everything at 100, completed_at latched
	_, err = SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[1].ID, f.cards[1][0].ID, true)
	require.NoError(t, err)
	result, err = SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[1].ID, f.cards[1][1].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.CourseProgress)
	assert.Equal(t, 100.0, result.LearningPathProgress)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		First(&userCourse).Error)
	assert.NotNil(t, userCourse.CompletedAt)
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", f.user.ID, f.path.ID).
		First(&userPath).Error)
	assert.NotNil(t, userPath.CompletedAt)
}

func TestToggleKeepsFlagsInSync(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 2)
	adoptPath(t, db, f)
	cardID := f.cards[0][0].ID

	for _, target := range []bool{true, false, true} {
		_, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, cardID, target)
		require.NoError(t, err)

		var userCard pathModels.UserCard
		require.NoError(t, db.Where("user_id = ? AND card_id = ?", f.user.ID, cardID).
			First(&userCard).Error)
		userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
		var link pathModels.UserSectionCard
		require.NoError(t, db.Where("user_section_id = ? AND card_id = ?", userSection.ID, cardID).
			First(&link).Error)

		assert.Equal(t, target, userCard.IsCompleted)
		assert.Equal(t, userCard.IsCompleted, link.IsCompleted,
			"global and section-scoped flags must never diverge")
	}
}

func TestToggleUncompleteRegressesProgress(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 2)
	adoptPath(t, db, f)

	_, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, f.cards[0][0].ID, true)
	require.NoError(t, err)
	result, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, f.cards[0][0].ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.SectionProgress)
}

func TestToggleSectionNotFound(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)
	// Not adopted: no user section exists, and the endpoint never materializes one
	_, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, f.cards[0][0].ID, true)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &pathModels.UserSection{}, "user_id = ?", f.user.ID))
}

func TestToggleCardNotInSection(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)
	adoptPath(t, db, f)

	stray := pathModels.Card{Keyword: "stray", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&stray).Error)

	_, err := SetCardCompletion(db, f.user.ID, f.path.ID, f.sections[0].ID, stray.ID, true)
	assert.ErrorIs(t, err, ErrCardNotInSection)

	// Strict path: nothing partially applied
	assert.EqualValues(t, 0, countRows(t, db, &pathModels.UserCard{},
		"user_id = ? AND card_id = ?", f.user.ID, stray.ID))
}
