package middleware

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"
	"github.com/BakariSp/Zero-AI-backend-sub000/database"
	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsageTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{}
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	return db
}

func TestGetOrCreateDailyUsageCreatesWithDefaults(t *testing.T) {
	db := setupUsageTestDB(t)
	config.AppConfig.PathsDailyLimit = 5
	config.AppConfig.CardsDailyLimit = 20

	user := models.User{Email: "quota@example.com", Username: "quota", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	usage, err := GetOrCreateDailyUsage(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, usage.PathsDailyLimit)
	assert.Equal(t, 20, usage.CardsDailyLimit)
	assert.Equal(t, 0, usage.PathsGenerated)

	// UsageDate is the local calendar day, matching how daily logs stamp days
	now := time.Now()
	localMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, usage.UsageDate.Equal(localMidnight))

	// Second call on the same day returns the same row
	again, err := GetOrCreateDailyUsage(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, usage.ID, again.ID)

	var count int64
	db.Model(&models.UserDailyUsage{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetOrCreateDailyUsageKeepsCounters(t *testing.T) {
	db := setupUsageTestDB(t)
	config.AppConfig.PathsDailyLimit = 5
	config.AppConfig.CardsDailyLimit = 20

	user := models.User{Email: "counter@example.com", Username: "counter", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	usage, err := GetOrCreateDailyUsage(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, db.Model(usage).Update("paths_generated", 3).Error)

	again, err := GetOrCreateDailyUsage(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.PathsGenerated)
}
