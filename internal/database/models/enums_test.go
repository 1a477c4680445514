package models_test

import (
	"testing"

	"taskboard-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestOrgRoleRank(t *testing.T) {
	assert.Equal(t, 3, models.RoleOwner.Rank())
	assert.Equal(t, 2, models.RoleAdmin.Rank())
	assert.Equal(t, 1, models.RoleViewer.Rank())
	assert.Equal(t, 0, models.OrgRole("manager").Rank())
	assert.Equal(t, 0, models.OrgRole("").Rank())
}

func TestOrgRoleSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     models.OrgRole
		required models.OrgRole
		want     bool
	}{
		{"owner satisfies owner", models.RoleOwner, models.RoleOwner, true},
		{"owner satisfies admin", models.RoleOwner, models.RoleAdmin, true},
		{"owner satisfies viewer", models.RoleOwner, models.RoleViewer, true},
		{"admin does not satisfy owner", models.RoleAdmin, models.RoleOwner, false},
		{"admin satisfies admin", models.RoleAdmin, models.RoleAdmin, true},
		{"admin satisfies viewer", models.RoleAdmin, models.RoleViewer, true},
		{"viewer does not satisfy owner", models.RoleViewer, models.RoleOwner, false},
		{"viewer does not satisfy admin", models.RoleViewer, models.RoleAdmin, false},
		{"viewer satisfies viewer", models.RoleViewer, models.RoleViewer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Satisfies(tt.required))
		})
	}
}

func TestOrgRoleSatisfiesUnknownRequirement(t *testing.T) {
	// An unknown required role must never be satisfied, even by an owner.
	assert.False(t, models.RoleOwner.Satisfies(models.OrgRole("")))
	assert.False(t, models.RoleOwner.Satisfies(models.OrgRole("superuser")))

	// An unknown caller role satisfies nothing.
	assert.False(t, models.OrgRole("manager").Satisfies(models.RoleViewer))
}

func TestOrgRoleIsValid(t *testing.T) {
	assert.True(t, models.RoleOwner.IsValid())
	assert.True(t, models.RoleAdmin.IsValid())
	assert.True(t, models.RoleViewer.IsValid())
	assert.False(t, models.OrgRole("OWNER").IsValid())
	assert.False(t, models.OrgRole("").IsValid())
}

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, models.TaskStatusTodo.IsValid())
	assert.True(t, models.TaskStatusInProgress.IsValid())
	assert.True(t, models.TaskStatusDone.IsValid())
	assert.False(t, models.TaskStatus("todo").IsValid())
	assert.False(t, models.TaskStatus("CANCELLED").IsValid())
}

func TestInvitationStatusIsValid(t *testing.T) {
	assert.True(t, models.InvitationStatusPending.IsValid())
	assert.True(t, models.InvitationStatusAccepted.IsValid())
	assert.True(t, models.InvitationStatusRevoked.IsValid())
	assert.False(t, models.InvitationStatus("expired").IsValid())
}
