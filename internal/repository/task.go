package repository

import (
	"taskboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID, excluding soft-deleted rows
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByIDIncludingDeleted retrieves a task by ID including soft-deleted
// rows. The guard uses this so that restore routes can resolve the owning
// organization of a deleted task.
func (r *TaskRepository) GetByIDIncludingDeleted(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Unscoped().First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByOrganizationID retrieves the tasks of an organization with optional
// status filter and pagination
func (r *TaskRepository) GetByOrganizationID(organizationID uuid.UUID, status *models.TaskStatus, limit, offset int) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	query := r.db.Model(&models.Task{}).Where("organization_id = ?", organizationID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete soft-deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// Restore clears the soft-delete marker of a task
func (r *TaskRepository) Restore(id uuid.UUID) error {
	return r.db.Unscoped().Model(&models.Task{}).Where("id = ?", id).Update("deleted_at", nil).Error
}
