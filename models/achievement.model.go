package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Achievement is a badge definition with JSON criteria
type Achievement struct {
	gorm.Model
	Title           string         `json:"title"`
	Description     string         `json:"description" gorm:"type:text"`
	BadgeImage      string         `json:"badge_image" gorm:"default:''"`
	AchievementType string         `json:"achievement_type" gorm:"size:50;index"` // "streak", "completion", "milestone"
	Criteria        datatypes.JSON `json:"criteria"`                              // e.g. {"streak_days": 7} or {"completed_paths": 1}
	IsDeleted       bool           `gorm:"default:false"`
}

// UserAchievement records when a user earned a badge
type UserAchievement struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"uniqueIndex:idx_user_achievement;not null"`
	AchievementID uint      `json:"achievement_id" gorm:"uniqueIndex:idx_user_achievement;not null"`
	AchievedAt    time.Time `json:"achieved_at" gorm:"autoCreateTime"`
}
