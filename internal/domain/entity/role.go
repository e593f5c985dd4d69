// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user registered as.
// It is a closed enumeration; every access-check site matches on it
// exhaustively instead of comparing raw strings.
type Role string

const (
	// RoleRestaurant indicates an account offering surplus food.
	RoleRestaurant Role = "restaurant"
	// RoleCharity indicates an account collecting surplus food.
	RoleCharity Role = "charity"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRestaurant, RoleCharity:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw string into a Role, reporting whether the
// value is one of the known roles.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
