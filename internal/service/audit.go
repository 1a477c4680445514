package service

import (
	"fmt"
	"time"

	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/logger"
	"taskboard-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditService records authorization-relevant actions. Recording is
// fire-and-forget from the caller's perspective: a failed write is logged
// and never surfaced to the client or allowed to fail the request.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditEntry describes one recorded action
type AuditEntry struct {
	OrganizationID uuid.UUID
	ActorID        uuid.UUID
	Action         string
	ResourceType   string
	ResourceID     *uuid.UUID
	Outcome        models.AuditOutcome
}

// AuditLogResponse represents one audit log entry in responses
type AuditLogResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	ActorID        uuid.UUID           `json:"actor_id"`
	Action         string              `json:"action"`
	ResourceType   string              `json:"resource_type"`
	ResourceID     *uuid.UUID          `json:"resource_id,omitempty"`
	Outcome        models.AuditOutcome `json:"outcome"`
	CreatedAt      string              `json:"created_at"`
}

// AuditLogListResponse represents a paginated audit log
type AuditLogListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Record appends an audit entry. Failures are logged, not returned.
func (s *AuditService) Record(entry AuditEntry) {
	row := &models.AuditLog{
		OrganizationID: entry.OrganizationID,
		ActorID:        entry.ActorID,
		Action:         entry.Action,
		ResourceType:   entry.ResourceType,
		ResourceID:     entry.ResourceID,
		Outcome:        entry.Outcome,
	}
	if err := s.repo.Create(row); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"organization_id": entry.OrganizationID,
			"action":          entry.Action,
		}).WithError(err).Warn("failed to record audit entry")
	}
}

// List retrieves the audit log of an organization
func (s *AuditService) List(organizationID uuid.UUID, page, pageSize int) (*AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log: %w", err)
	}

	responses := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = AuditLogResponse{
			ID:             entry.ID,
			OrganizationID: entry.OrganizationID,
			ActorID:        entry.ActorID,
			Action:         entry.Action,
			ResourceType:   entry.ResourceType,
			ResourceID:     entry.ResourceID,
			Outcome:        entry.Outcome,
			CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AuditLogListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
