package model

import (
	"time"

	"github.com/google/uuid"
)

// Role grants or withholds access to privileged endpoints.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered shop account.
type User struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may access admin-only endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
