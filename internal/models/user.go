package models

import "time"

// User is the database row for a dashboard user.
type User struct {
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Role           string    `db:"role"`
	PasswordHash   string    `db:"password_hash"`
	AuthProvider   string    `db:"auth_provider"`
	ProviderUserID *string   `db:"provider_user_id"` // nullable, set for OAuth users
	CreatedAt      time.Time `db:"created_at"`
}
