package authz_test

import (
	"testing"

	"taskboard-backend/internal/authz"
	"taskboard-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestCanInvite(t *testing.T) {
	assert.True(t, authz.CanInvite(models.RoleOwner))
	assert.True(t, authz.CanInvite(models.RoleAdmin))
	assert.False(t, authz.CanInvite(models.RoleViewer))
	assert.False(t, authz.CanInvite(models.OrgRole("")))
}

func TestCanGrantRole(t *testing.T) {
	tests := []struct {
		name      string
		inviter   models.OrgRole
		requested models.OrgRole
		want      bool
	}{
		{"owner grants owner", models.RoleOwner, models.RoleOwner, true},
		{"owner grants admin", models.RoleOwner, models.RoleAdmin, true},
		{"owner grants viewer", models.RoleOwner, models.RoleViewer, true},
		{"admin cannot grant owner", models.RoleAdmin, models.RoleOwner, false},
		{"admin grants admin", models.RoleAdmin, models.RoleAdmin, true},
		{"admin grants viewer", models.RoleAdmin, models.RoleViewer, true},
		{"viewer cannot grant viewer", models.RoleViewer, models.RoleViewer, false},
		{"viewer cannot grant admin", models.RoleViewer, models.RoleAdmin, false},
		{"unknown requested role is refused", models.RoleOwner, models.OrgRole("superuser"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanGrantRole(tt.inviter, tt.requested))
		})
	}
}
