// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"blogapp/internal/errors"
)

// User represents a registered author in the system
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	About     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
