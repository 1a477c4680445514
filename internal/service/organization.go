package service

import (
	"errors"
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo        repository.OrganizationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, memberships repository.MembershipRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// MemberResponse represents one member of an organization
type MemberResponse struct {
	UserID   uuid.UUID      `json:"user_id"`
	Email    string         `json:"email"`
	FullName string         `json:"full_name"`
	Role     models.OrgRole `json:"role"`
	JoinedAt string         `json:"joined_at"`
}

// MemberListResponse represents a paginated list of organization members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new organization and makes the creator its owner. The
// organization and the owner membership are written in one transaction so
// an organization can never exist without an owner.
func (s *OrganizationService) Create(req *CreateOrganizationRequest, creatorID uuid.UUID) (*OrganizationResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if organization with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.CreateWithOwner(org, creatorID); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByIDForUser retrieves an organization by ID on behalf of a caller. A
// caller without a membership receives not-found rather than forbidden, so
// organization ids cannot be probed for existence through this route family.
func (s *OrganizationService) GetByIDForUser(id, userID uuid.UUID) (*OrganizationResponse, error) {
	if _, err := s.memberships.FindRole(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// ListForUser retrieves the organizations the caller belongs to
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// ListMembers retrieves the members of an organization with pagination
func (s *OrganizationService) ListMembers(organizationID uuid.UUID, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	memberships, total, err := s.memberships.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]MemberResponse, len(memberships))
	for i, m := range memberships {
		members[i] = MemberResponse{
			UserID:   m.UserID,
			Email:    m.User.Email,
			FullName: m.User.FullName,
			Role:     m.Role,
			JoinedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}

	return &MemberListResponse{
		Members:  members,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts an organization model to a response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
	}
}
