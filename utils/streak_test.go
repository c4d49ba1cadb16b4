package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStreakTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func logOnDay(t *testing.T, db *gorm.DB, userID uint, daysAgo int) {
	t.Helper()
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -daysAgo)
	require.NoError(t, db.Create(&models.DailyLog{UserID: userID, LogDate: day}).Error)
}

func TestCurrentStreakNoLogs(t *testing.T) {
	db := setupStreakTestDB(t)

	streak, err := CurrentStreak(db, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	db := setupStreakTestDB(t)

	for daysAgo := 0; daysAgo < 3; daysAgo++ {
		logOnDay(t, db, 1, daysAgo)
	}

	streak, err := CurrentStreak(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCurrentStreakBreaksOnGap(t *testing.T) {
	db := setupStreakTestDB(t)

	logOnDay(t, db, 1, 0)
	logOnDay(t, db, 1, 1)
	logOnDay(t, db, 1, 3) // gap at two days ago

	streak, err := CurrentStreak(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestCurrentStreakDeadAfterTwoQuietDays(t *testing.T) {
	db := setupStreakTestDB(t)

	logOnDay(t, db, 1, 2)
	logOnDay(t, db, 1, 3)

	streak, err := CurrentStreak(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCurrentStreakAliveFromYesterday(t *testing.T) {
	db := setupStreakTestDB(t)

	logOnDay(t, db, 1, 1)
	logOnDay(t, db, 1, 2)

	streak, err := CurrentStreak(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestCurrentStreakDuplicateLogsSameDay(t *testing.T) {
	db := setupStreakTestDB(t)

	logOnDay(t, db, 1, 0)
	logOnDay(t, db, 1, 0)
	logOnDay(t, db, 1, 1)

	streak, err := CurrentStreak(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}
