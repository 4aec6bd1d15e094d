package domain

import (
	"strings"
	"time"
)

// Role is a user's permission level inside their company. It is derived at
// conversion time (admin membership first, employee type second) and is
// never stored by the remote store.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleOfficeCrew Role = "officeCrew"
	RoleFieldCrew  Role = "fieldCrew"
)

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficeCrew, RoleFieldCrew:
		return true
	}
	return false
}

// CanWrite reports whether the role may create or modify records. Field
// crew members get a read-only dashboard.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleOfficeCrew
}

// User is a member of a company's team.
type User struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CompanyID string     `json:"company_id"`
	Role      Role       `json:"role"`
	IsAdmin   bool       `json:"is_admin"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
