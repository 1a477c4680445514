package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithOwner(org *models.Organization, ownerID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByUserID(userID uuid.UUID) ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	FindRole(userID, organizationID uuid.UUID) (models.OrgRole, error)
	GetByUserAndOrganization(userID, organizationID uuid.UUID) (*models.Membership, error)
	GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Membership, int64, error)
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetByIDIncludingDeleted(id uuid.UUID) (*models.Task, error)
	GetByOrganizationID(organizationID uuid.UUID, status *models.TaskStatus, limit, offset int) ([]models.Task, int64, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
	Restore(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	GetByToken(token string) (*models.Invitation, error)
	GetPendingByEmailAndOrganization(email string, organizationID uuid.UUID) (*models.Invitation, error)
	GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error)
	Update(invitation *models.Invitation) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
}
