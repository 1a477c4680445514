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

// TaskService handles business logic for tasks
type TaskService struct {
	repo      repository.TaskRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:      repo,
		audit:     audit,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	OrganizationID uuid.UUID           `json:"organization_id" validate:"required"`
	Title          string              `json:"title" validate:"required,min=1,max=200"`
	Description    string              `json:"description,omitempty"`
	Status         models.TaskStatus   `json:"status,omitempty"`
	Priority       models.TaskPriority `json:"priority,omitempty"`
	AssigneeID     *uuid.UUID          `json:"assignee_id,omitempty"`
}

// UpdateTaskRequest represents the request to update a task. Pointer fields
// distinguish "absent" from "set to zero value"; the field-level policy is
// evaluated against the set of present fields.
type UpdateTaskRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      *models.TaskStatus   `json:"status,omitempty"`
	Priority    *models.TaskPriority `json:"priority,omitempty"`
	AssigneeID  *uuid.UUID           `json:"assignee_id,omitempty"`
}

// Fields returns the JSON names of the fields present in the payload. Only
// user-supplied fields appear here; values the guard injected into the
// request context are not part of the payload and never show up.
func (r *UpdateTaskRequest) Fields() []string {
	var fields []string
	if r.Title != nil {
		fields = append(fields, "title")
	}
	if r.Description != nil {
		fields = append(fields, "description")
	}
	if r.Status != nil {
		fields = append(fields, "status")
	}
	if r.Priority != nil {
		fields = append(fields, "priority")
	}
	if r.AssigneeID != nil {
		fields = append(fields, "assignee_id")
	}
	return fields
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Status         models.TaskStatus   `json:"status"`
	Priority       models.TaskPriority `json:"priority"`
	AssigneeID     *uuid.UUID          `json:"assignee_id,omitempty"`
	CreatedByID    uuid.UUID           `json:"created_by_id"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
	DeletedAt      *string             `json:"deleted_at,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks    []TaskResponse `json:"tasks"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new task in the organization the guard resolved
func (s *TaskService) Create(req *CreateTaskRequest, actorID uuid.UUID) (*TaskResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of TODO, IN_PROGRESS, DONE")
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}

	task := &models.Task{
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		AssigneeID:     req.AssigneeID,
		CreatedByID:    actorID,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: task.OrganizationID,
		ActorID:        actorID,
		Action:         "task.created",
		ResourceType:   "task",
		ResourceID:     &task.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return s.toResponse(task), nil
}

// GetByID retrieves a task by ID, excluding soft-deleted tasks
func (s *TaskService) GetByID(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return s.toResponse(task), nil
}

// List retrieves the tasks of an organization with optional status filter
func (s *TaskService) List(organizationID uuid.UUID, status *models.TaskStatus, page, pageSize int) (*TaskListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of TODO, IN_PROGRESS, DONE")
	}

	offset := (page - 1) * pageSize
	tasks, total, err := s.repo.GetByOrganizationID(organizationID, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *s.toResponse(&task)
	}

	return &TaskListResponse{
		Tasks:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies the present fields of the request to the task. The caller
// is expected to have passed the field-level policy already; the whole
// payload is applied or none of it.
func (s *TaskService) Update(id uuid.UUID, req *UpdateTaskRequest, actorID uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of TODO, IN_PROGRESS, DONE")
	}
	if req.Priority != nil && !req.Priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH")
	}
	if req.Title != nil && (*req.Title == "" || len(*req.Title) > 200) {
		return nil, apperrors.NewValidationError("title", "must be between 1 and 200 characters")
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		task.AssigneeID = req.AssigneeID
	}

	if err := s.repo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: task.OrganizationID,
		ActorID:        actorID,
		Action:         "task.updated",
		ResourceType:   "task",
		ResourceID:     &task.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return s.toResponse(task), nil
}

// Delete soft-deletes a task
func (s *TaskService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	task, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.repo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.audit.Record(AuditEntry{
		OrganizationID: task.OrganizationID,
		ActorID:        actorID,
		Action:         "task.deleted",
		ResourceType:   "task",
		ResourceID:     &task.ID,
		Outcome:        models.AuditOutcomeAllowed,
	})

	return nil
}

// Restore brings back a soft-deleted task
func (s *TaskService) Restore(id uuid.UUID, actorID uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByIDIncludingDeleted(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task.DeletedAt.Valid {
		if err := s.repo.Restore(task.ID); err != nil {
			return nil, fmt.Errorf("failed to restore task: %w", err)
		}
		task.DeletedAt = gorm.DeletedAt{}

		s.audit.Record(AuditEntry{
			OrganizationID: task.OrganizationID,
			ActorID:        actorID,
			Action:         "task.restored",
			ResourceType:   "task",
			ResourceID:     &task.ID,
			Outcome:        models.AuditOutcomeAllowed,
		})
	}

	return s.toResponse(task), nil
}

// toResponse converts a task model to a response
func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:             task.ID,
		OrganizationID: task.OrganizationID,
		Title:          task.Title,
		Description:    task.Description,
		Status:         task.Status,
		Priority:       task.Priority,
		AssigneeID:     task.AssigneeID,
		CreatedByID:    task.CreatedByID,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.Format(time.RFC3339),
	}
	if task.DeletedAt.Valid {
		deletedAt := task.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &deletedAt
	}
	return resp
}
