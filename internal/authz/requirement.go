package authz

import (
	"strings"

	"taskboard-backend/internal/database/models"
)

// Requirement declares which roles a route admits. It is either a minimum
// role, satisfied by any role of equal or higher rank, or an explicit set,
// satisfied only by exact membership. Routes declare their requirement at
// registration time and a single guard interprets it.
type Requirement struct {
	minimum models.OrgRole
	anyOf   []models.OrgRole
}

// MinimumRole builds a requirement satisfied by the given role and every
// role ranked above it.
func MinimumRole(role models.OrgRole) Requirement {
	return Requirement{minimum: role}
}

// AnyOf builds a requirement satisfied only by the listed roles.
func AnyOf(roles ...models.OrgRole) Requirement {
	return Requirement{anyOf: roles}
}

// Allows reports whether the caller's role satisfies the requirement.
func (r Requirement) Allows(role models.OrgRole) bool {
	if len(r.anyOf) > 0 {
		for _, allowed := range r.anyOf {
			if role == allowed {
				return true
			}
		}
		return false
	}
	return role.Satisfies(r.minimum)
}

// String describes the requirement for logging
func (r Requirement) String() string {
	if len(r.anyOf) > 0 {
		parts := make([]string, len(r.anyOf))
		for i, role := range r.anyOf {
			parts[i] = string(role)
		}
		return "any-of(" + strings.Join(parts, ",") + ")"
	}
	return "minimum(" + string(r.minimum) + ")"
}
