package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyLog records one study session; streaks are derived from consecutive log dates
type DailyLog struct {
	gorm.Model
	UserID            uint           `json:"user_id" gorm:"index;not null"`
	LogDate           time.Time      `json:"log_date" gorm:"type:date;index;not null"`
	CompletedSections datatypes.JSON `json:"completed_sections"` // section IDs as JSON array
	Notes             string         `json:"notes" gorm:"type:text"`
	StudyTimeMinutes  int            `json:"study_time_minutes" gorm:"default:0"`
}
