package domain

import "time"

// Role is the coarse trust tier assigned to a profile.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleClient     Role = "client"
)

// Valid reports whether the role is part of the fixed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleTechnician, RoleClient:
		return true
	}
	return false
}

// Profile models a dashboard account. Client-role profiles reference the
// client record they belong to and never reach the dashboard surface.
type Profile struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Permissions  FlagSet
	ClientID     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
