package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation carries a proposed role for a not-yet-member user. It becomes a
// Membership only when accepted; until then the role on the row is the one
// the inviter was allowed to grant at creation time.
type Invitation struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email          string           `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	Role           OrgRole          `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Token          string           `json:"-" gorm:"uniqueIndex;not null;size:128"`
	InvitedByID    uuid.UUID        `json:"invited_by_id" gorm:"type:uuid;not null"`
	ExpiresAt      time.Time        `json:"expires_at" gorm:"not null"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	InvitedBy    User         `json:"invited_by,omitempty" gorm:"foreignKey:InvitedByID"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsExpired reports whether the invitation's expiry has passed.
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
