package models

// User represents a global account. A user has no permissions of their own;
// organization access exists only through Membership rows.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	FullName     string `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
