package path

import "gorm.io/gorm"

// CourseSection is a shared template section. LearningPathID is set when the
// section hangs directly off a learning path instead of a course.
type CourseSection struct {
	gorm.Model
	LearningPathID *uint  `json:"learning_path_id" gorm:"index"`
	Title          string `json:"title"`
	Description    string `json:"description" gorm:"type:text"`
	OrderIndex     int    `json:"order_index" gorm:"default:0"`
	EstimatedDays  int    `json:"estimated_days" gorm:"default:0"`
	IsTemplate     bool   `json:"is_template" gorm:"default:true"`
	IsDeleted      bool   `gorm:"default:false"`
}

// SectionCard links a card into a template section in display order
type SectionCard struct {
	gorm.Model
	SectionID  uint `json:"section_id" gorm:"uniqueIndex:idx_section_card;not null"`
	CardID     uint `json:"card_id" gorm:"uniqueIndex:idx_section_card;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
}

// UserSection is a user's copy of a template section. SectionTemplateID is nil
// for sections the user created from scratch.
type UserSection struct {
	gorm.Model
	UserID            uint    `json:"user_id" gorm:"uniqueIndex:idx_user_section;index;not null"`
	SectionTemplateID *uint   `json:"section_template_id" gorm:"uniqueIndex:idx_user_section;index"`
	Title             string  `json:"title"`
	Description       string  `json:"description" gorm:"type:text"`
	Progress          float64 `json:"progress" gorm:"default:0"` // 0-100
}

// UserSectionCard is a user-section card membership with its own
// section-scoped completion flag
type UserSectionCard struct {
	gorm.Model
	UserSectionID uint `json:"user_section_id" gorm:"uniqueIndex:idx_us_card;index;not null"`
	CardID        uint `json:"card_id" gorm:"uniqueIndex:idx_us_card;index;not null"`
	OrderIndex    int  `json:"order_index" gorm:"default:0"`
	IsCustom      bool `json:"is_custom" gorm:"default:false"` // added by the user, no template counterpart
	IsCompleted   bool `json:"is_completed" gorm:"default:false"`
}
