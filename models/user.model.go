package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string         `json:"email" gorm:"unique;not null"`
	Username       string         `json:"username" gorm:"uniqueIndex;size:50"`
	Password       string         `json:"-" gorm:"not null"`
	FullName       string         `json:"full_name" gorm:"default:''"`
	ProfilePicture string         `json:"profile_picture" gorm:"default:''"`
	Interests      datatypes.JSON `json:"interests"` // interest tags as JSON array
	OauthProvider  string         `json:"oauth_provider" gorm:"default:''"` // 'google', 'github', etc.
	OauthID        string         `json:"oauth_id" gorm:"default:''"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	IsSuperuser    bool           `json:"is_superuser" gorm:"default:false"`
	LastLogin      *time.Time     `json:"last_login"`
	IsDeleted      bool           `gorm:"default:false"`
}
