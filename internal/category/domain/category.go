// Package domain defines the core category domain entities and types.
package domain

import (
	"time"

	"blogapp/internal/errors"
)

// Category groups posts under a title and description
type Category struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ErrCategoryNotFound indicates the requested category does not exist.
var ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")
