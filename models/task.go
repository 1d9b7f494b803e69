package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/taskboard-api/utils"
)

// TaskStatus enumerates the lifecycle states of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a unit of work owned by a project. The project relation is
// set at creation and never re-pointed.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;size:25"`
	ProjectID   string     `json:"projectId" gorm:"size:25;not null;index"`
	Title       string     `json:"title" gorm:"size:150;not null"`
	Description *string    `json:"description,omitempty" gorm:"size:1000"`
	Status      TaskStatus `json:"status" gorm:"size:20;not null;default:PENDING"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName sets the table name for Task model
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate assigns the store-generated identifier.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.NewCUID()
	}
	return nil
}
