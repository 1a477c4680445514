package handlers

import (
	"net/http"
	"strconv"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/authz"
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	service service.TaskServiceInterface
	audit   service.AuditServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface, audit service.AuditServiceInterface) *TaskHandler {
	return &TaskHandler{service: service, audit: audit}
}

// CreateTask handles POST /api/v1/tasks
// @Summary Create a new task
// @Description Create a task in an organization; requires the admin role or above
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	orgID, ok := authz.OrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	// The guard resolved the organization from the payload; pin the request
	// to that resolution.
	req.OrganizationID = orgID

	task, err := h.service.Create(&req, userID)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /api/v1/tasks
// @Summary List organization tasks
// @Description Get the tasks of an organization with optional status filter
// @Tags tasks
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param status query string false "Task status filter (TODO, IN_PROGRESS, DONE)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TaskListResponse "Successfully retrieved tasks"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	orgID, ok := authz.OrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var status *models.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := models.TaskStatus(raw)
		status = &s
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tasks, err := h.service.List(orgID, status, page, pageSize)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /api/v1/tasks/:id
// @Summary Get task by ID
// @Description Get a specific task; soft-deleted tasks are not returned
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	task, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/v1/tasks/:id
// @Summary Update a task
// @Description Update task fields; viewers may only change the status field
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role may not modify the requested fields"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	role, ok := authz.CallerRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// Field-level policy: the whole payload is rejected when any present
	// field is outside the role's allowed set.
	if err := authz.CheckTaskUpdateFields(role, req.Fields()); err != nil {
		if orgID, ok := authz.OrganizationID(c); ok {
			h.audit.Record(service.AuditEntry{
				OrganizationID: orgID,
				ActorID:        userID,
				Action:         "task.update",
				ResourceType:   "task",
				ResourceID:     &id,
				Outcome:        models.AuditOutcomeDenied,
			})
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Update(id, &req, userID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/:id
// @Summary Delete a task
// @Description Soft-delete a task; requires the admin role or above
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreTask handles POST /api/v1/tasks/:id/restore
// @Summary Restore a soft-deleted task
// @Description Bring back a soft-deleted task; requires the admin role or above
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.TaskResponse "Successfully restored task"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/restore [post]
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
		return
	}

	task, err := h.service.Restore(id, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore task", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}
