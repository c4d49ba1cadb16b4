package progress

import (
	"testing"

	pathModels "github.com/BakariSp/Zero-AI-backend-sub000/models/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopySectionToUser(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 3)

	userSection, err := CopySectionToUser(db, f.user.ID, f.sections[0].ID)
	require.NoError(t, err)
	require.NotNil(t, userSection.SectionTemplateID)
	assert.Equal(t, f.sections[0].ID, *userSection.SectionTemplateID)
	assert.Equal(t, f.sections[0].Title, userSection.Title)

	var links []pathModels.UserSectionCard
	require.NoError(t, db.Where("user_section_id = ?", userSection.ID).
		Order("order_index asc").Find(&links).Error)
	require.Len(t, links, 3)
	for i, link := range links {
		assert.Equal(t, f.cards[0][i].ID, link.CardID)
		assert.Equal(t, i, link.OrderIndex)
		assert.False(t, link.IsCustom)
		assert.False(t, link.IsCompleted)
	}
}

func TestCopySectionToUserMissingTemplate(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	_, err := CopySectionToUser(db, f.user.ID, 99999)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestInitializeUserProgressRecords(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	assert.EqualValues(t, 1, countRows(t, db, &pathModels.UserCourse{}, "user_id = ?", f.user.ID))
	assert.EqualValues(t, 2, countRows(t, db, &pathModels.UserSection{}, "user_id = ?", f.user.ID))
	assert.EqualValues(t, 4, countRows(t, db, &pathModels.UserCard{}, "user_id = ?", f.user.ID))

	for _, section := range f.sections {
		userSection := userSectionFor(t, db, f.user.ID, section.ID)
		assert.EqualValues(t, 2, countRows(t, db, &pathModels.UserSectionCard{},
			"user_section_id = ?", userSection.ID))
		assert.Equal(t, 0.0, userSection.Progress)
	}
}

func TestInitializeUserProgressRecordsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	// Put some progress in place, then re-run: gaps only, nothing reset
	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	require.NoError(t, db.Model(&userSection).Update("progress", 50.0).Error)
	require.NoError(t, db.Model(&pathModels.UserCard{}).
		Where("user_id = ? AND card_id = ?", f.user.ID, f.cards[0][0].ID).
		Update("is_completed", true).Error)

	require.NoError(t, InitializeUserProgressRecords(db, f.user.ID, f.path.ID))

	assert.EqualValues(t, 1, countRows(t, db, &pathModels.UserCourse{}, "user_id = ?", f.user.ID))
	assert.EqualValues(t, 2, countRows(t, db, &pathModels.UserSection{}, "user_id = ?", f.user.ID))
	assert.EqualValues(t, 4, countRows(t, db, &pathModels.UserCard{}, "user_id = ?", f.user.ID))

	refreshed := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.Equal(t, 50.0, refreshed.Progress, "re-initialization must not reset progress")
	assert.EqualValues(t, 1, countRows(t, db, &pathModels.UserCard{},
		"user_id = ? AND is_completed = ?", f.user.ID, true))
}

func TestInitializeUserProgressRecordsFillsGaps(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 2, 2)
	adoptPath(t, db, f)

	// Simulate a card added to a template after the user's copy was made
	lateCard := pathModels.Card{Keyword: "late", Question: "q", Answer: "a"}
	require.NoError(t, db.Create(&lateCard).Error)
	require.NoError(t, db.Create(&pathModels.SectionCard{
		SectionID: f.sections[0].ID, CardID: lateCard.ID, OrderIndex: 2,
	}).Error)

	require.NoError(t, InitializeUserProgressRecords(db, f.user.ID, f.path.ID))

	userSection := userSectionFor(t, db, f.user.ID, f.sections[0].ID)
	assert.EqualValues(t, 3, countRows(t, db, &pathModels.UserSectionCard{},
		"user_section_id = ?", userSection.ID))
	assert.EqualValues(t, 5, countRows(t, db, &pathModels.UserCard{}, "user_id = ?", f.user.ID))
}

func TestInitializeUserProgressRecordsMissingPath(t *testing.T) {
	db := setupTestDB(t)
	f := seedPathWithCourse(t, db, 1, 1)

	err := InitializeUserProgressRecords(db, f.user.ID, 99999)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
