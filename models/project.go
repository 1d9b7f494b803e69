package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/taskboard-api/utils"
)

// Project represents a project container owning an ordered collection of tasks
type Project struct {
	ID          string    `json:"id" gorm:"primaryKey;size:25"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description *string   `json:"description,omitempty" gorm:"size:500"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Tasks []Task `json:"tasks" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate assigns the store-generated identifier.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = utils.NewCUID()
	}
	return nil
}
