// Package domain defines the core comment domain entities and types.
package domain

import (
	"time"

	"blogapp/internal/errors"
)

// Comment represents a reader comment attached to a post
type Comment struct {
	ID        int64
	Content   string
	PostID    int64
	CreatedAt time.Time
}

// ErrCommentNotFound indicates the requested comment does not exist.
var ErrCommentNotFound = errors.Wrap(errors.ErrNotFound, "comment not found")
