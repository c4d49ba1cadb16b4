package path

import (
	"time"

	"gorm.io/gorm"
)

// Course is a shared template course grouping sections
type Course struct {
	gorm.Model
	Title         string `json:"title" gorm:"index"`
	Description   string `json:"description" gorm:"type:text"`
	EstimatedDays int    `json:"estimated_days" gorm:"default:0"`
	IsTemplate    bool   `json:"is_template" gorm:"default:true"`
	IsDeleted     bool   `gorm:"default:false"`
}

// CourseSectionAssociation links a section into a course in display order
type CourseSectionAssociation struct {
	gorm.Model
	CourseID   uint `json:"course_id" gorm:"uniqueIndex:idx_course_section;not null"`
	SectionID  uint `json:"section_id" gorm:"uniqueIndex:idx_course_section;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}

// UserCourse tracks a user's progress through one course
type UserCourse struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress    float64    `json:"progress" gorm:"default:0"` // 0-100
	StartDate   time.Time  `json:"start_date" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"`
}
