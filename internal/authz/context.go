package authz

import (
	"taskboard-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys under which the guard publishes its resolution. Handlers must
// read the organization id from here rather than re-deriving it from the
// request, so that the guard's resolution stays the single source of truth.
const (
	orgIDKey   = "organization_id"
	orgRoleKey = "org_role"
)

// OrganizationID returns the organization id the guard resolved for this
// request.
func OrganizationID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(orgIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// CallerRole returns the caller's role in the resolved organization.
func CallerRole(c *gin.Context) (models.OrgRole, bool) {
	value, exists := c.Get(orgRoleKey)
	if !exists {
		return "", false
	}

	role, ok := value.(models.OrgRole)
	return role, ok
}
