package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard-backend/internal/authz"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationService handles business logic for organization invitations
type InvitationService struct {
	repo        repository.InvitationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	audit       AuditServiceInterface
	expiry      time.Duration
	validator   *validator.Validate
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	repo repository.InvitationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	audit AuditServiceInterface,
	expiry time.Duration,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		repo:        repo,
		memberships: memberships,
		users:       users,
		audit:       audit,
		expiry:      expiry,
		validator:   validator,
	}
}

// CreateInvitationRequest represents the request to invite a user
type CreateInvitationRequest struct {
	OrganizationID uuid.UUID      `json:"organization_id" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Role           models.OrgRole `json:"role" validate:"required"`
}

// AcceptInvitationRequest represents the request to accept an invitation
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// InvitationResponse represents the response for invitation operations
type InvitationResponse struct {
	ID             uuid.UUID               `json:"id"`
	OrganizationID uuid.UUID               `json:"organization_id"`
	Email          string                  `json:"email"`
	Role           models.OrgRole          `json:"role"`
	Status         models.InvitationStatus `json:"status"`
	Token          string                  `json:"token,omitempty"`
	InvitedByID    uuid.UUID               `json:"invited_by_id"`
	ExpiresAt      string                  `json:"expires_at"`
	CreatedAt      string                  `json:"created_at"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// MembershipResponse represents the membership created by accepting an invitation
type MembershipResponse struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID uuid.UUID      `json:"organization_id"`
	UserID         uuid.UUID      `json:"user_id"`
	Role           models.OrgRole `json:"role"`
	CreatedAt      string         `json:"created_at"`
}

// Create mints an invitation. The inviter's role caps the role the
// invitation may carry: owners grant any role, admins grant at most admin.
func (s *InvitationService) Create(req *CreateInvitationRequest, inviterID uuid.UUID, inviterRole models.OrgRole) (*InvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of owner, admin, viewer")
	}
	if !authz.CanGrantRole(inviterRole, req.Role) {
		return nil, apperrors.ErrCannotGrantRole
	}

	email := strings.ToLower(req.Email)

	// A user who already belongs to the organization cannot be invited again.
	if user, err := s.users.GetByEmail(email); err == nil {
		if _, err := s.memberships.FindRole(user.ID, req.OrganizationID); err == nil {
			return nil, apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// One pending invitation per email per organization.
	if _, err := s.repo.GetPendingByEmailAndOrganization(email, req.OrganizationID); err == nil {
		return nil, apperrors.ErrInvitationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	invitation := &models.Invitation{
		OrganizationID: req.OrganizationID,
		Email:          email,
		Role:           req.Role,
		Status:         models.InvitationStatusPending,
		Token:          token,
		InvitedByID:    inviterID,
		ExpiresAt:      time.Now().Add(s.expiry),
	}

	if err := s.repo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: invitation.OrganizationID,
		ActorID:        inviterID,
		Action:         "invitation.created",
		ResourceType:   "invitation",
		ResourceID:     &invitation.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return s.toResponse(invitation, true), nil
}

// List retrieves the invitations of an organization
func (s *InvitationService) List(organizationID uuid.UUID, page, pageSize int) (*InvitationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	invitations, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		responses[i] = *s.toResponse(&inv, false)
	}

	return &InvitationListResponse{
		Invitations: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Accept redeems an invitation token for the authenticated user. The token
// must be pending, unexpired, and addressed to the caller's email. The
// created membership carries the role fixed at invitation time.
func (s *InvitationService) Accept(req *AcceptInvitationRequest, userID uuid.UUID, userEmail string) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.repo.GetByToken(req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if !strings.EqualFold(invitation.Email, userEmail) {
		// The token is real but addressed to someone else; respond as if
		// it did not exist rather than confirm it.
		return nil, apperrors.ErrInvitationNotFound
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationNotPending
	}
	if invitation.IsExpired() {
		return nil, apperrors.ErrInvitationExpired
	}

	if _, err := s.memberships.FindRole(userID, invitation.OrganizationID); err == nil {
		return nil, apperrors.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	membership := &models.Membership{
		UserID:         userID,
		OrganizationID: invitation.OrganizationID,
		Role:           invitation.Role,
	}
	if err := s.memberships.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	invitation.Status = models.InvitationStatusAccepted
	if err := s.repo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: invitation.OrganizationID,
		ActorID:        userID,
		Action:         "invitation.accepted",
		ResourceType:   "invitation",
		ResourceID:     &invitation.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return &MembershipResponse{
		ID:             membership.ID,
		OrganizationID: membership.OrganizationID,
		UserID:         membership.UserID,
		Role:           membership.Role,
		CreatedAt:      membership.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Revoke cancels a pending invitation
func (s *InvitationService) Revoke(id uuid.UUID, actorID uuid.UUID) error {
	invitation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to look up invitation: %w", err)
	}

	if invitation.Status != models.InvitationStatusPending {
		return apperrors.ErrInvitationNotPending
	}

	invitation.Status = models.InvitationStatusRevoked
	if err := s.repo.Update(invitation); err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: invitation.OrganizationID,
		ActorID:        actorID,
		Action:         "invitation.revoked",
		ResourceType:   "invitation",
		ResourceID:     &invitation.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return nil
}

// Resend rotates the token and extends the expiry of a pending invitation
func (s *InvitationService) Resend(id uuid.UUID, actorID uuid.UUID) (*InvitationResponse, error) {
	invitation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if invitation.Status != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationNotPending
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	invitation.Token = token
	invitation.ExpiresAt = time.Now().Add(s.expiry)
	if err := s.repo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: invitation.OrganizationID,
		ActorID:        actorID,
		Action:         "invitation.resent",
		ResourceType:   "invitation",
		ResourceID:     &invitation.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return s.toResponse(invitation, true), nil
}

// generateInvitationToken returns a 64-character hex token
func generateInvitationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// toResponse converts an invitation to a response. The token is only
// included when the invitation was just minted or resent.
func (s *InvitationService) toResponse(inv *models.Invitation, includeToken bool) *InvitationResponse {
	resp := &InvitationResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Role:           inv.Role,
		Status:         inv.Status,
		InvitedByID:    inv.InvitedByID,
		ExpiresAt:      inv.ExpiresAt.Format(time.RFC3339),
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
	}
	if includeToken {
		resp.Token = inv.Token
	}
	return resp
}
