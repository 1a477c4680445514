package service

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest, creatorID uuid.UUID) (*OrganizationResponse, error)
	GetByIDForUser(id, userID uuid.UUID) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	ListMembers(organizationID uuid.UUID, page, pageSize int) (*MemberListResponse, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(req *CreateTaskRequest, actorID uuid.UUID) (*TaskResponse, error)
	GetByID(id uuid.UUID) (*TaskResponse, error)
	List(organizationID uuid.UUID, status *models.TaskStatus, page, pageSize int) (*TaskListResponse, error)
	Update(id uuid.UUID, req *UpdateTaskRequest, actorID uuid.UUID) (*TaskResponse, error)
	Delete(id uuid.UUID, actorID uuid.UUID) error
	Restore(id uuid.UUID, actorID uuid.UUID) (*TaskResponse, error)
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(req *CreateInvitationRequest, inviterID uuid.UUID, inviterRole models.OrgRole) (*InvitationResponse, error)
	List(organizationID uuid.UUID, page, pageSize int) (*InvitationListResponse, error)
	Accept(req *AcceptInvitationRequest, userID uuid.UUID, userEmail string) (*MembershipResponse, error)
	Revoke(id uuid.UUID, actorID uuid.UUID) error
	Resend(id uuid.UUID, actorID uuid.UUID) (*InvitationResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByID(id uuid.UUID) (*UserResponse, error)
}

// AuditServiceInterface defines the interface for the audit sink
type AuditServiceInterface interface {
	Record(entry AuditEntry)
	List(organizationID uuid.UUID, page, pageSize int) (*AuditLogListResponse, error)
}
