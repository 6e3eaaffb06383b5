package entity

import "slices"

// Role represents the role of an administrator.
type Role string

const (
	// RoleSuperAdmin sees and edits every record.
	RoleSuperAdmin Role = "super-admin"
	// RoleEditor is limited by an access scope.
	RoleEditor Role = "editor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleEditor:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
