package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit log entries
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit log entry
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByOrganizationID retrieves the audit log of an organization with pagination
func (r *AuditLogRepository) GetByOrganizationID(organizationID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	if err := r.db.Model(&models.AuditLog{}).Where("organization_id = ?", organizationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
