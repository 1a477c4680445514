package models

// OrgRole represents a member's role within an organization.
// Roles form a strict total order: owner > admin > viewer.
type OrgRole string

const (
	RoleOwner  OrgRole = "owner"
	RoleAdmin  OrgRole = "admin"
	RoleViewer OrgRole = "viewer"
)

// roleRanks maps each role to its position in the hierarchy. A route that
// requires a role is satisfied by any role of equal or higher rank, so
// reordering these values would change the meaning of every route annotation.
var roleRanks = map[OrgRole]int{
	RoleOwner:  3,
	RoleAdmin:  2,
	RoleViewer: 1,
}

// Rank returns the role's position in the hierarchy, 0 for an unknown role.
func (r OrgRole) Rank() int {
	return roleRanks[r]
}

// Satisfies reports whether the role meets a minimum-role requirement.
func (r OrgRole) Satisfies(required OrgRole) bool {
	return r.Rank() >= required.Rank() && required.Rank() > 0
}

// IsValid checks if the OrgRole is valid
func (r OrgRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleViewer:
		return true
	}
	return false
}

// TaskStatus defines the lifecycle states of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority defines the priority levels of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// InvitationStatus defines the lifecycle states of an invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRevoked:
		return true
	}
	return false
}

// AuditOutcome records whether an audited action was allowed or denied
type AuditOutcome string

const (
	AuditOutcomeAllowed AuditOutcome = "allowed"
	AuditOutcomeDenied  AuditOutcome = "denied"
)
