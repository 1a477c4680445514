package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// FindRole returns the user's role in the organization. A missing membership
// surfaces as gorm.ErrRecordNotFound; this is the live read every
// authorization decision is built on.
func (r *MembershipRepository) FindRole(userID, organizationID uuid.UUID) (models.OrgRole, error) {
	var membership models.Membership
	err := r.db.
		Select("role").
		First(&membership, "user_id = ? AND organization_id = ?", userID, organizationID).Error
	if err != nil {
		return "", err
	}
	return membership.Role, nil
}

// GetByUserAndOrganization retrieves a membership by user and organization
func (r *MembershipRepository) GetByUserAndOrganization(userID, organizationID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND organization_id = ?", userID, organizationID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByOrganizationID retrieves the memberships of an organization with pagination
func (r *MembershipRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.Membership, int64, error) {
	var memberships []models.Membership
	var total int64

	if err := r.db.Model(&models.Membership{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("User").
		Where("organization_id = ?", organizationID).
		Limit(limit).Offset(offset).
		Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}
