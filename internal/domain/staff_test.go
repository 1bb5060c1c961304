package domain

import "testing"

func TestRolePrivileged(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleDeveloper, false},
		{RoleDesigner, false},
		{RoleAnalyst, false},
		{RoleCoordinator, false},
		{RoleUser, false},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Privileged(); got != tt.want {
			t.Errorf("Privileged(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
