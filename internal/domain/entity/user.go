package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User is an account that can sign in to the system.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	Role         string // admin, operator, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
