package authz

import (
	"taskboard-backend/internal/database/models"
)

// CanInvite reports whether the role may create invitations at all.
func CanInvite(role models.OrgRole) bool {
	return role == models.RoleOwner || role == models.RoleAdmin
}

// CanGrantRole reports whether an inviter holding inviterRole may mint an
// invitation carrying requestedRole. Owners may grant any role including
// owner; admins may grant admin or viewer but never owner; viewers may not
// invite at all. The same ceiling governs the role carried onto the
// membership at acceptance time, since the invitation's role is fixed here.
func CanGrantRole(inviterRole, requestedRole models.OrgRole) bool {
	if !CanInvite(inviterRole) || !requestedRole.IsValid() {
		return false
	}
	if inviterRole == models.RoleOwner {
		return true
	}
	return requestedRole.Rank() <= inviterRole.Rank()
}
