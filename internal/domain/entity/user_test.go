package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserNormalize(t *testing.T) {
	tests := []struct {
		name       string
		user       User
		wantRole   UserRole
		wantStatus UserStatus
	}{
		{
			name:       "empty defaults",
			user:       User{},
			wantRole:   RoleUser,
			wantStatus: StatusActive,
		},
		{
			name:       "existing role kept",
			user:       User{Role: RoleAdmin},
			wantRole:   RoleAdmin,
			wantStatus: StatusActive,
		},
		{
			name:       "existing status kept",
			user:       User{Status: StatusBlocked},
			wantRole:   RoleUser,
			wantStatus: StatusBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.user.Normalize()
			assert.Equal(t, tt.wantRole, tt.user.Role)
			assert.Equal(t, tt.wantStatus, tt.user.Status)
		})
	}
}

func TestUserRoleChecks(t *testing.T) {
	admin := User{Role: RoleAdmin}
	regular := User{Role: RoleUser}
	blocked := User{Status: StatusBlocked}

	assert.True(t, admin.IsAdmin())
	assert.False(t, regular.IsAdmin())
	assert.True(t, blocked.IsBlocked())
	assert.False(t, admin.IsBlocked())
}
