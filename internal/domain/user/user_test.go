package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techile/fieldportal/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := NewUser(" Admin@TechILE.ca ", "$2a$10$hash", "Sophie", authorization.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "admin@techile.ca", u.Email())
		assert.True(t, u.IsActive())
		assert.True(t, u.IsAdmin())
		assert.False(t, u.IsTechnician())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewUser("", "h", "", authorization.RoleClient)
		assert.Error(t, err)
		_, err = NewUser("a@b.com", "", "", authorization.RoleClient)
		assert.Error(t, err)
		_, err = NewUser("a@b.com", "h", "", "superuser")
		assert.Error(t, err)
	})
}

func TestUserRoleGates(t *testing.T) {
	tests := []struct {
		role       authorization.UserRole
		admin      bool
		technician bool
	}{
		{authorization.RoleAdmin, true, false},
		{authorization.RoleTechnician, false, true},
		{authorization.RoleClient, false, false},
		{authorization.RoleAdminTechnician, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			u, err := NewUser("x@y.com", "h", "", tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.admin, u.IsAdmin())
			assert.Equal(t, tt.technician, u.IsTechnician())
		})
	}
}

func TestUserLifecycle(t *testing.T) {
	u, err := NewUser("tech@techile.ca", "h1", "Luc", authorization.RoleTechnician)
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("h2"))
	assert.Equal(t, "h2", u.PasswordHash())
	assert.Error(t, u.ChangePassword(""))

	require.NoError(t, u.ChangeRole(authorization.RoleAdminTechnician))
	assert.True(t, u.IsAdmin())
	assert.Error(t, u.ChangeRole("root"))

	now := time.Now()
	u.RecordLogin(now)
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, now, *u.LastLoginAt())

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}
