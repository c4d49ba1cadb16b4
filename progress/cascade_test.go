package progress

import (
	"testing"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A card in a section the user never materialized: the cascade creates the
// user section, backfills user_cards rows, and reports both
func TestCascadeMaterializesMissingSection(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 3)

	// Adopted, but nothing materialized yet
	require.NoError(t, db.Create(&pathModels.UserLearningPath{
		UserID: f.user.ID, LearningPathID: f.path.ID,
	}).Error)

	summary, err := CascadeProgressUpdate(db, f.user.ID, f.cards[0][0].ID)
	require.NoError(t, err)

	require.Len(t, summary.SectionsUpdated, 1)
	assert.True(t, summary.SectionsUpdated[0].Created)
	assert.Equal(t, 0.0, summary.SectionsUpdated[0].Progress)
	assert.Equal(t, 3, summary.CardsCreated)

	require.Len(t, summary.CoursesUpdated, 1)
	assert.True(t, summary.CoursesUpdated[0].Created)

	require.Len(t, summary.LearningPathsUpdated, 1)
	assert.Equal(t, f.path.ID, summary.LearningPathsUpdated[0].LearningPathID)

	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.EqualValues(t, 3, countRows(t, db, &pathModels.UserSectionCard{},
		"user_section_id = ?", userSection.ID))
}

// Two identical cascades in a row: the second is a no-op with an identical shape
func TestCascadeIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	require.NoError(t, db.Create(&pathModels.UserLearningPath{
		UserID: f.user.ID, LearningPathID: f.path.ID,
	}).Error)

	first, err := CascadeProgressUpdate(db, f.user.ID, f.cards[0][0].ID)
	require.NoError(t, err)
	require.Equal(t, 2, first.CardsCreated)

	second, err := CascadeProgressUpdate(db, f.user.ID, f.cards[0][0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CardsCreated)
	require.Len(t, second.SectionsUpdated, 1)
	assert.False(t, second.SectionsUpdated[0].Created)
	assert.Equal(t, first.SectionsUpdated[0].Progress, second.SectionsUpdated[0].Progress)
	require.Len(t, second.CoursesUpdated, 1)
	assert.False(t, second.CoursesUpdated[0].Created)
	assert.Equal(t, first.CoursesUpdated[0].Progress, second.CoursesUpdated[0].Progress)
	assert.Equal(t, first.LearningPathsUpdated, second.LearningPathsUpdated)
}

// After a completion flag flips, the cascade propagates bottom-up and no
// aggregate is stale relative to its children
func TestCascadeBottomUpConsistency(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	require.NoError(t, db.Model(&pathModels.UserCard{}).
		Where("user_id = ? AND card_id = ?", f.user.ID, f.cards[0][0].ID).
		Update("is_completed", true).Error)

	summary, err := CascadeProgressUpdate(db, f.user.ID, f.cards[0][0].ID)
	require.NoError(t, err)

	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.Equal(t, 50.0, userSection.Progress)

	var userCourse pathModels.UserCourse
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).
		First(&userCourse).Error)
	assert.Equal(t, 25.0, userCourse.Progress)

	var userPath pathModels.UserLearningPath
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", f.user.ID, f.path.ID).
		First(&userPath).Error)
	assert.Equal(t, 25.0, userPath.Progress)

	require.Len(t, summary.LearningPathsUpdated, 1)
	assert.Equal(t, 25.0, summary.LearningPathsUpdated[0].Progress)
}

// A path the user never adopted is skipped, never auto-adopted
func TestCascadeSkipsUnadoptedPath(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 2)

	summary, err := CascadeProgressUpdate(db, f.user.ID, f.cards[0][0].ID)
	require.NoError(t, err)

	assert.Len(t, summary.LearningPathsUpdated, 0)
	assert.EqualValues(t, 0, countRows(t, db, &pathModels.UserLearningPath{},
		"user_id = ?", f.user.ID))
	// Sections and courses are still repaired
	assert.Len(t, summary.SectionsUpdated, 1)
	assert.Len(t, summary.CoursesUpdated, 1)
}

// A card reachable by nobody yields an empty summary, not an error
func TestCascadeUnknownCard(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	orphan := pathModels.Card{Keyword: "orphan", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&orphan).Error)

	summary, err := CascadeProgressUpdate(db, f.user.ID, orphan.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.SectionsUpdated)
	assert.Empty(t, summary.CoursesUpdated)
	assert.Empty(t, summary.LearningPathsUpdated)
	assert.Equal(t, 0, summary.CardsCreated)
}

// Cards added to a template after the user's copy was made get backfilled
func TestCascadeBackfillsLateCards(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 2)
	adoptPath(t, db, f)

	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	lateCard := pathModels.Card{Keyword: "late", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&lateCard).Error)
	require.NoError(t, db.Create(&pathModels.SectionCard{
		SectionID: f.sections[0].ID, CardID: lateCard.ID, OrderIndex: 2,
	}).Error)
	// Link exists in the user's section but no user_cards row yet
	require.NoError(t, db.Create(&pathModels.UserSectionCard{
		UserSectionID: userSection.ID, CardID: lateCard.ID, OrderIndex: 2,
	}).Error)

	summary, err := CascadeProgressUpdate(db, f.user.ID, lateCard.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CardsCreated)
	assert.EqualValues(t, 1, countRows(t, db, &pathModels.UserCard{},
		"user_id = ? AND card_id = ?", f.user.ID, lateCard.ID))
}

// A direct section (no course in between) still reaches its learning path
func TestCascadeDirectSectionReachesPath(t *testing.T) {
	db := setupTestDB(t)

	user := seedPathWithCourse(t, db, 1, 1).user

	lp := pathModels.LearningPath{Title: "Direct only"}
	require.NoError(t, db.Create(&lp).Error)
	section := pathModels.CourseSection{Title: "Direct", LearningPathID: &lp.ID}
	require.NoError(t, db.Create(&section).Error)
	card := pathModels.Card{Keyword: "direct", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&card).Error)
	require.NoError(t, db.Create(&pathModels.SectionCard{
		SectionID: section.ID, CardID: card.ID, OrderIndex: 0,
	}).Error)
	require.NoError(t, db.Create(&pathModels.UserLearningPath{
		UserID: user.ID, LearningPathID: lp.ID,
	}).Error)

	require.NoError(t, db.Create(&pathModels.UserCard{
		UserID: user.ID, CardID: card.ID, IsCompleted: true,
	}).Error)

	summary, err := CascadeProgressUpdate(db, user.ID, card.ID)
	require.NoError(t, err)

	require.Len(t, summary.SectionsUpdated, 1)
	assert.True(t, summary.SectionsUpdated[0].Created)
	assert.Equal(t, 100.0, summary.SectionsUpdated[0].Progress)
	assert.Empty(t, summary.CoursesUpdated)
	require.Len(t, summary.LearningPathsUpdated, 1)
	assert.Equal(t, 100.0, summary.LearningPathsUpdated[0].Progress)

	var userPath pathModels.UserLearningPath
	require.NoError(t, db.Where("user_id = ? AND learning_path_id = ?", user.ID, lp.ID).
		First(&userPath).Error)
	assert.NotNil(t, userPath.CompletedAt)
}
