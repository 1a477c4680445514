package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents an organization-scoped work item. Tasks are soft-deleted
// so that a restore can bring back a deleted row; the stored OrganizationID
// is the single source of truth for which tenant the task belongs to.
type Task struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string         `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string         `json:"description" gorm:"type:text"`
	Status         TaskStatus     `json:"status" gorm:"type:varchar(20);not null;default:'TODO'"`
	Priority       TaskPriority   `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	AssigneeID     *uuid.UUID     `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID    uuid.UUID      `json:"created_by_id" gorm:"type:uuid;not null"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Assignee     *User        `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
