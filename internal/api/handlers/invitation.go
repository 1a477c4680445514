package handlers

import (
	"net/http"
	"strconv"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/authz"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for organization invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// CreateInvitation handles POST /api/v1/invitations
// @Summary Invite a user to an organization
// @Description Create an invitation; admins may grant at most admin, owners any role
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Successfully created invitation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role may not grant the requested role"
// @Failure 409 {object} map[string]interface{} "Already a member or already invited"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
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

	role, ok := authz.CallerRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.OrganizationID = orgID

	invitation, err := h.service.Create(&req, userID, role)
	if err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err) || apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// ListInvitations handles GET /api/v1/invitations
// @Summary List organization invitations
// @Description Get the invitations of an organization
// @Tags invitations
// @Accept json
// @Produce json
// @Param organization_id query string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InvitationListResponse "Successfully retrieved invitations"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	orgID, ok := authz.OrganizationID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrOrgContextMissing.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	invitations, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invitations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Redeem an invitation token addressed to the caller's email
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.AcceptInvitationRequest true "Invitation token"
// @Success 201 {object} service.MembershipResponse "Membership created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation expired, revoked, or already a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	membership, err := h.service.Accept(&req, userID, email)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// RevokeInvitation handles DELETE /api/v1/invitations/:id
// @Summary Revoke a pending invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 204 "Invitation revoked"
// @Failure 400 {object} map[string]interface{} "Invalid invitation ID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation is no longer pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID: invalid UUID format"})
		return
	}

	if err := h.service.Revoke(id, userID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke invitation", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ResendInvitation handles POST /api/v1/invitations/:id/resend
// @Summary Resend a pending invitation
// @Description Rotate the token and extend the expiry of a pending invitation
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.InvitationResponse "Invitation resent"
// @Failure 400 {object} map[string]interface{} "Invalid invitation ID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation is no longer pending"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/{id}/resend [post]
func (h *InvitationHandler) ResendInvitation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID: invalid UUID format"})
		return
	}

	invitation, err := h.service.Resend(id, userID)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, invitation)
}
