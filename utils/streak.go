package utils

import (
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/models"

	"gorm.io/gorm"
)

// CurrentStreak returns the number of consecutive days (ending today or
// yesterday) on which the user recorded a study log
func CurrentStreak(db *gorm.DB, userID uint) (int, error) {
	var dates []time.Time
	err := db.Model(&models.DailyLog{}).
		Where("user_id = ?", userID).
		Distinct("log_date").
		Order("log_date desc").
		Pluck("log_date", &dates).Error
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	today := day(time.Now())
	latest := day(dates[0])

	// A streak is still alive if the last log is from today or yesterday
	if latest.Before(today.AddDate(0, 0, -1)) {
		return 0, nil
	}

	streak := 1
	expected := latest.AddDate(0, 0, -1)
	for _, d := range dates[1:] {
		if !day(d).Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak, nil
}
