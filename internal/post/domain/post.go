// Package domain defines the core post domain entities and types.
package domain

import (
	"time"

	"blogapp/internal/errors"
)

// Post represents a blog post belonging to one user and one category
type Post struct {
	ID         int64
	Title      string
	Content    string
	ImageName  string
	AddedDate  time.Time
	UserID     int64
	CategoryID int64
	UpdatedAt  time.Time
}

// SortDirection is the requested ordering for paginated listings.
type SortDirection string

// Accepted sort directions.
const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// PageQuery describes a paginated, sorted post listing request.
// PageNumber is zero-based. SortBy must be a whitelisted column.
type PageQuery struct {
	PageNumber int
	PageSize   int
	SortBy     string
	SortDir    SortDirection
}

// Page is a bounded, ordered subset of the post set together with the
// counts required to navigate it.
type Page struct {
	Content       []*Post
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	LastPage      bool
}

// Domain-specific errors for post operations.
var (
	// ErrPostNotFound indicates the requested post does not exist.
	ErrPostNotFound = errors.Wrap(errors.ErrNotFound, "post not found")

	// ErrInvalidSortField indicates the sort field is not supported.
	ErrInvalidSortField = errors.Wrap(errors.ErrInvalidInput, "invalid sort field")

	// ErrInvalidSortDirection indicates the sort direction is not ASC or DESC.
	ErrInvalidSortDirection = errors.Wrap(errors.ErrInvalidInput, "invalid sort direction")
)
