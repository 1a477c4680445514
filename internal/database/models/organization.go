package models

// Organization represents the root entity for multi-tenancy. Every task,
// invitation and audit entry belongs to exactly one organization.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Tasks       []Task       `json:"tasks,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations []Invitation `json:"invitations,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
