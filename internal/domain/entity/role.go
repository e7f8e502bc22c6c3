// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the capability tag carried by an account.
type Role string

const (
	// RoleStandard is the role every self-registered account starts with.
	RoleStandard Role = "standard"
	// RoleAdmin grants access to the admin dashboard.
	RoleAdmin Role = "admin"
	// RoleCreator grants access to the admin dashboard for content creators.
	RoleCreator Role = "creator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RoleAdmin, RoleCreator:
		return true
	default:
		return false
	}
}

// ParseRole converts a string into a Role, reporting whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}

// AllRoles lists every known role.
func AllRoles() Roles {
	return Roles{RoleStandard, RoleAdmin, RoleCreator}
}

// Roles is a capability set: the roles allowed to perform an operation.
// Membership is flat, no role implies another.
type Roles []Role

// DashboardRoles is the capability set for privileged dashboard operations.
var DashboardRoles = Roles{RoleAdmin, RoleCreator}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
