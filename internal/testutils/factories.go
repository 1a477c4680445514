package testutils

import (
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
)

// Password used by every factory-built user. Matches the bcrypt hash below.
const FactoryPassword = "testpassword123"

// bcrypt hash of FactoryPassword at cost 10, precomputed so factories stay cheap.
const factoryPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye1J1xWb0bW8f1yEOCB9mDJHxkfQx1bES"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: factoryPasswordHash,
		FullName:     "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Test Organization %s", id.String()[:8]),
		Description: "A test organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership linking the given user and organization
func (f *MembershipFactory) Create(userID, organizationID uuid.UUID, role models.OrgRole) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         userID,
		OrganizationID: organizationID,
		Role:           role,
	}
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task in the given organization
func (f *TaskFactory) Create(organizationID, createdByID uuid.UUID) *models.Task {
	id := uuid.New()
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: organizationID,
		Title:          fmt.Sprintf("Test Task %s", id.String()[:8]),
		Description:    "A test task",
		Status:         models.TaskStatusTodo,
		Priority:       models.TaskPriorityMedium,
		CreatedByID:    createdByID,
	}
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(organizationID, createdByID uuid.UUID, status models.TaskStatus) *models.Task {
	task := f.Create(organizationID, createdByID)
	task.Status = status
	return task
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending test Invitation for the given email
func (f *InvitationFactory) Create(organizationID, invitedByID uuid.UUID, email string, role models.OrgRole) *models.Invitation {
	id := uuid.New()
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: organizationID,
		Email:          email,
		Role:           role,
		Status:         models.InvitationStatusPending,
		Token:          fmt.Sprintf("test-token-%s", id.String()),
		InvitedByID:    invitedByID,
		ExpiresAt:      time.Now().Add(72 * time.Hour),
	}
}

// Expired creates an invitation whose expiry has already passed
func (f *InvitationFactory) Expired(organizationID, invitedByID uuid.UUID, email string, role models.OrgRole) *models.Invitation {
	inv := f.Create(organizationID, invitedByID, email, role)
	inv.ExpiresAt = time.Now().Add(-time.Hour)
	return inv
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Task         *TaskFactory
	Invitation   *InvitationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Task:         NewTaskFactory(),
		Invitation:   NewInvitationFactory(),
	}
}
