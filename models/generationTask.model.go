package models

import (
	"time"

	"gorm.io/gorm"
)

// Generation task states
const (
	TaskPending = "PENDING"
	TaskRunning = "RUNNING"
	TaskDone    = "DONE"
	TaskFailed  = "FAILED"
)

// GenerationTask tracks an async AI learning-path generation request
type GenerationTask struct {
	gorm.Model
	TaskID         string     `json:"task_id" gorm:"uniqueIndex;size:36;not null"` // uuid
	UserID         uint       `json:"user_id" gorm:"index;not null"`
	Prompt         string     `json:"prompt" gorm:"type:text"`
	Status         string     `json:"status" gorm:"default:'PENDING'"`
	LearningPathID *uint      `json:"learning_path_id"` // set when DONE
	ErrorMessage   string     `json:"error_message" gorm:"type:text"`
	FinishedAt     *time.Time `json:"finished_at"`
}
