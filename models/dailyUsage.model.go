package models

import (
	"time"

	"gorm.io/gorm"
)

// UserDailyUsage tracks per-day AI generation quotas for one user
type UserDailyUsage struct {
	gorm.Model
	UserID          uint      `json:"user_id" gorm:"uniqueIndex:idx_user_usage_date;not null"`
	UsageDate       time.Time `json:"usage_date" gorm:"uniqueIndex:idx_user_usage_date;type:date;not null"`
	PathsGenerated  int       `json:"paths_generated" gorm:"default:0"`
	CardsGenerated  int       `json:"cards_generated" gorm:"default:0"`
	PathsDailyLimit int       `json:"paths_daily_limit" gorm:"default:5"`
	CardsDailyLimit int       `json:"cards_daily_limit" gorm:"default:20"`
}
