package authz

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:generate mockgen -source=guard.go -destination=../mocks/authz_mocks.go -package=mocks

// MembershipResolver looks up a caller's role in an organization. A missing
// membership is reported as gorm.ErrRecordNotFound.
type MembershipResolver interface {
	FindRole(userID, organizationID uuid.UUID) (models.OrgRole, error)
}

// TaskLookup resolves a task by id including soft-deleted rows, so that
// routes operating on deleted tasks (restore) still resolve their
// organization.
type TaskLookup interface {
	GetByIDIncludingDeleted(id uuid.UUID) (*models.Task, error)
}

// InvitationLookup resolves an invitation by id.
type InvitationLookup interface {
	GetByID(id uuid.UUID) (*models.Invitation, error)
}

// Decision is the outcome of one guard evaluation. It is computed fresh per
// request and never cached; a role change takes effect on the next request.
type Decision struct {
	Allowed        bool
	OrganizationID uuid.UUID
	CallerRole     models.OrgRole
	Requirement    Requirement
}

// Guard enforces per-organization role requirements in front of handlers.
// Each request runs the same sequence: identity, organization resolution,
// membership lookup, role comparison. Any failure is terminal and the
// request never reaches the handler.
type Guard struct {
	memberships MembershipResolver
	tasks       TaskLookup
	invitations InvitationLookup
}

// NewGuard creates a new authorization guard
func NewGuard(memberships MembershipResolver, tasks TaskLookup, invitations InvitationLookup) *Guard {
	return &Guard{
		memberships: memberships,
		tasks:       tasks,
		invitations: invitations,
	}
}

// Require returns middleware admitting only callers whose role in the
// route's target organization satisfies the requirement. On admission the
// resolved organization id and caller role are attached to the request
// context for the handler and the field policy.
func (g *Guard) Require(requirement Requirement, source OrgSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := auth.GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		orgID, ok := g.resolveOrganization(c, source)
		if !ok {
			// resolveOrganization has already written the response
			return
		}

		role, err := g.memberships.FindRole(callerID, orgID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Absent membership and insufficient role look identical to
				// the caller so organization structure cannot be probed.
				g.deny(c, callerID, orgID, "", requirement)
				return
			}
			// Fail closed on store errors, never treat as authorized.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		if !requirement.Allows(role) {
			g.deny(c, callerID, orgID, role, requirement)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":         callerID,
			"organization_id": orgID,
			"role":            role,
			"requirement":     requirement.String(),
			"path":            c.FullPath(),
		}).Debug("authorization granted")

		c.Set(orgIDKey, orgID)
		c.Set(orgRoleKey, role)
		c.Next()
	}
}

// resolveOrganization determines the single organization the request
// targets. It writes the response and aborts on failure, returning false.
func (g *Guard) resolveOrganization(c *gin.Context, source OrgSource) (uuid.UUID, bool) {
	switch source.kind {
	case sourceParam:
		return g.parseOrgID(c, c.Param(source.name))

	case sourceQuery:
		return g.parseOrgID(c, c.Query(source.name))

	case sourceBody:
		return g.orgIDFromBody(c, source.name)

	case sourceTask:
		id, err := uuid.Parse(c.Param(source.name))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID: invalid UUID format"})
			c.Abort()
			return uuid.Nil, false
		}
		task, err := g.tasks.GetByIDIncludingDeleted(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			}
			c.Abort()
			return uuid.Nil, false
		}
		return task.OrganizationID, true

	case sourceInvitation:
		id, err := uuid.Parse(c.Param(source.name))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID: invalid UUID format"})
			c.Abort()
			return uuid.Nil, false
		}
		invitation, err := g.invitations.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "invitation not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			}
			c.Abort()
			return uuid.Nil, false
		}
		return invitation.OrganizationID, true
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
	c.Abort()
	return uuid.Nil, false
}

func (g *Guard) parseOrgID(c *gin.Context, raw string) (uuid.UUID, bool) {
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required"})
		c.Abort()
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

// orgIDFromBody picks the organization id out of the JSON body and restores
// the body for the handler's own binding.
func (g *Guard) orgIDFromBody(c *gin.Context, field string) (uuid.UUID, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		c.Abort()
		return uuid.Nil, false
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		c.Abort()
		return uuid.Nil, false
	}

	var value string
	if rawField, ok := payload[field]; ok {
		_ = json.Unmarshal(rawField, &value)
	}
	return g.parseOrgID(c, value)
}

func (g *Guard) deny(c *gin.Context, callerID, orgID uuid.UUID, role models.OrgRole, requirement Requirement) {
	logrus.WithFields(logrus.Fields{
		"user_id":         callerID,
		"organization_id": orgID,
		"requirement":     requirement.String(),
		"path":            c.FullPath(),
	}).Warn("authorization denied")

	// No role detail in the response; the category is all a caller learns.
	c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	c.Abort()
}
