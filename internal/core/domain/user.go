package domain

import "time"

// Role is the access level carried by a user's credential.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// IsManager reports whether the role carries approval authority.
// Admins are managers for every permission check.
func (r Role) IsManager() bool {
	return r == RoleManager || r == RoleAdmin
}

// IsAdmin reports whether the role is admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanApprove reports whether the role may approve or reject leave
// requests and expense claims.
func (r Role) CanApprove() bool {
	return r.IsManager()
}

// User represents a dashboard user in the domain.
type User struct {
	UserID         string       `json:"userID"` // UUID
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Role           Role         `json:"role"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// Principal is the authenticated identity derived from a request
// credential. It is never persisted.
type Principal struct {
	ID    string
	Email string
	Role  Role
}
