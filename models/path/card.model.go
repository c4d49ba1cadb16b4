package path

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Card is a shared flashcard, referenced by many sections and many users
type Card struct {
	gorm.Model
	Keyword     string         `json:"keyword" gorm:"index;not null"`
	Question    string         `json:"question" gorm:"type:text;not null"`
	Answer      string         `json:"answer" gorm:"type:text;not null"`
	Explanation string         `json:"explanation" gorm:"type:text"`
	Difficulty  string         `json:"difficulty" gorm:"size:50"`
	Level       string         `json:"level" gorm:"size:20"`
	Resources   datatypes.JSON `json:"resources"` // list of {url, title}
	Tags        datatypes.JSON `json:"tags"`
	CreatedBy   string         `json:"created_by" gorm:"size:100"` // AI Planner / System / username
	IsDeleted   bool           `gorm:"default:false"`
}

// UserCard is the user's global completion/collection record for one card,
// independent of which sections reference it
type UserCard struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex:idx_user_card;index;not null"`
	CardID           uint       `json:"card_id" gorm:"uniqueIndex:idx_user_card;index;not null"`
	IsCompleted      bool       `json:"is_completed" gorm:"default:false"`
	ExpandedExample  string     `json:"expanded_example" gorm:"type:text"`
	Notes            string     `json:"notes" gorm:"type:text"`
	SavedAt          time.Time  `json:"saved_at" gorm:"autoCreateTime"`
	DifficultyRating *int       `json:"difficulty_rating"` // 1-5
	DepthPreference  string     `json:"depth_preference" gorm:"size:20"` // "basic" or "advanced"
	RecommendedBy    string     `json:"recommended_by" gorm:"size:100"`
	CompletedAt      *time.Time `json:"completed_at"`
}
