package models

import (
	"github.com/google/uuid"
)

// AuditLog is an append-only record of a mutating action and its outcome.
type AuditLog struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorID        uuid.UUID    `json:"actor_id" gorm:"type:uuid;not null;index"`
	Action         string       `json:"action" gorm:"not null;size:100"`
	ResourceType   string       `json:"resource_type" gorm:"not null;size:50"`
	ResourceID     *uuid.UUID   `json:"resource_id,omitempty" gorm:"type:uuid"`
	Outcome        AuditOutcome `json:"outcome" gorm:"type:varchar(20);not null"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
