package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToken retrieves an invitation by its opaque token
func (r *InvitationRepository) GetByToken(token string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPendingByEmailAndOrganization retrieves a pending invitation for the
// email within the organization, if one exists
func (r *InvitationRepository) GetPendingByEmailAndOrganization(email string, organizationID uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation,
		"email = ? AND organization_id = ? AND status = ?",
		email, organizationID, models.InvitationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByOrganizationID retrieves the invitations of an organization with pagination
func (r *InvitationRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error) {
	var invitations []models.Invitation
	var total int64

	if err := r.db.Model(&models.Invitation{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&invitations).Error
	if err != nil {
		return nil, 0, err
	}

	return invitations, total, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.Invitation) error {
	return r.db.Save(invitation).Error
}
