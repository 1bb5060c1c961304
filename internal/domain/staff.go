package domain

import "time"

// Role enumerates staff roles. Only admin and manager grant access to the
// protected admin surface; every other role is non-privileged.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleDeveloper   Role = "developer"
	RoleDesigner    Role = "designer"
	RoleAnalyst     Role = "analyst"
	RoleCoordinator Role = "coordinator"
	RoleUser        Role = "user"
)

// Privileged reports whether the role belongs to the admin tier.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// DefaultDepartment is assigned to staff auto-provisioned at first sign-in.
const DefaultDepartment = "Unassigned"

// Staff models a person record keyed by email, the unit of authentication
// identity.
type Staff struct {
	ID         string
	Email      string
	Name       string
	Department string
	Role       Role
	ExternalID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StaffHourStats carries per-staff aggregates derived from time entries.
type StaffHourStats struct {
	TotalHours    float64
	ThisWeekHours float64
	EntryCount    int
}
