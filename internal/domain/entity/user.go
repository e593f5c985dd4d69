// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record shared by restaurants and charities.
// The role is fixed at signup and never changes afterwards; the matching
// profile pointer is nil until the account creates one.
type User struct {
	ID                uuid.UUID          // The unique identifier for the account.
	Email             string             // Login identifier, unique across the system.
	Username          string             // Public handle, unique across the system.
	PasswordHash      string             // bcrypt hash of the account password. Never exposed.
	Role              Role               // Either RoleRestaurant or RoleCharity. Immutable.
	IsActive          bool               // Soft activation flag; inactive accounts cannot log in.
	RestaurantProfile *RestaurantProfile // Set only for restaurant accounts that created a profile.
	CharityProfile    *CharityProfile    // Set only for charity accounts that created a profile.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasProfile reports whether the user has created the profile matching its role.
// Listing and pickup operations require this before any mutation.
func (u *User) HasProfile() bool {
	switch u.Role {
	case RoleRestaurant:
		return u.RestaurantProfile != nil
	case RoleCharity:
		return u.CharityProfile != nil
	default:
		return false
	}
}

// RestaurantProfile is the public-facing record of a restaurant account,
// linked 1:1 to a User. Food items are owned through this profile.
type RestaurantProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Foreign key to the owning User.
	Name        string
	Address     string
	Phone       string
	Email       string // Public contact email, distinct from the login email.
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CharityProfile is the public-facing record of a charity account, linked 1:1
// to a User. The rolling stats columns mirror the original schema and are
// display-only; authoritative numbers are always computed from completed
// pickups on demand.
type CharityProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string

	TotalPickups int
	PeopleHelped int
	FoodSavedKg  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfilePatch carries a partial update for a restaurant or charity profile.
// Nil fields are left unchanged.
type ProfilePatch struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Description *string
}

// ApplyToRestaurant copies the non-nil patch fields onto the profile.
func (p *ProfilePatch) ApplyToRestaurant(profile *RestaurantProfile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Address != nil {
		profile.Address = *p.Address
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.Description != nil {
		profile.Description = *p.Description
	}
}

// ApplyToCharity copies the non-nil patch fields onto the profile.
func (p *ProfilePatch) ApplyToCharity(profile *CharityProfile) {
	if p.Name != nil {
		profile.Name = *p.Name
	}
	if p.Address != nil {
		profile.Address = *p.Address
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Email != nil {
		profile.Email = *p.Email
	}
	if p.Description != nil {
		profile.Description = *p.Description
	}
}
