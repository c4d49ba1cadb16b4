package path

import (
	"time"

	"gorm.io/gorm"
)

// LearningPath is a shared template path authored once and adopted by many users
type LearningPath struct {
	gorm.Model
	Title           string `json:"title" gorm:"index"`
	Description     string `json:"description" gorm:"type:text"`
	Category        string `json:"category" gorm:"index;size:100"`
	DifficultyLevel string `json:"difficulty_level" gorm:"size:50"`
	EstimatedDays   int    `json:"estimated_days" gorm:"default:0"`
	IsTemplate      bool   `json:"is_template" gorm:"default:true"`
	CreatedBy       string `json:"created_by" gorm:"size:100"` // AI Planner / System / username
	IsDeleted       bool   `gorm:"default:false"`
}

// LearningPathCourse links a course into a learning path in display order
type LearningPathCourse struct {
	gorm.Model
	LearningPathID uint `json:"learning_path_id" gorm:"uniqueIndex:idx_lp_course;not null"`
	CourseID       uint `json:"course_id" gorm:"uniqueIndex:idx_lp_course;not null"`
	OrderIndex     int  `json:"order_index" gorm:"default:0"`
}

// UserLearningPath tracks a user's adoption of a learning path with progress
type UserLearningPath struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lp;not null"`
	LearningPathID uint       `json:"learning_path_id" gorm:"uniqueIndex:idx_user_lp;not null"`
	Progress       float64    `json:"progress" gorm:"default:0"` // 0-100
	StartDate      time.Time  `json:"start_date" gorm:"autoCreateTime"`
	CompletedAt    *time.Time `json:"completed_at"`
}
