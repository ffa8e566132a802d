// Package repository provides data persistence implementations for post entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogapp/internal/database"
	"blogapp/internal/post/domain"

	apperrors "blogapp/internal/errors"
)

// ListParams describes an offset/limit window over the post set.
// SortColumn must already be validated against the whitelist by the caller.
type ListParams struct {
	Offset     int
	Limit      int
	SortColumn string
	Desc       bool
}

// PostgreSQLPostRepository handles post persistence for PostgreSQL
type PostgreSQLPostRepository struct {
	db *sql.DB
}

// NewPostgreSQLPostRepository creates a new PostgreSQLPostRepository
func NewPostgreSQLPostRepository(db *sql.DB) *PostgreSQLPostRepository {
	return &PostgreSQLPostRepository{
		db: db,
	}
}

const postgresPostColumns = `id, title, content, image_name, added_date, user_id, category_id, updated_at`

func scanPostgresPost(row interface{ Scan(dest ...any) error }, post *domain.Post) error {
	return row.Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageName, &post.AddedDate,
		&post.UserID, &post.CategoryID, &post.UpdatedAt,
	)
}

// Create inserts a new post. The database assigns the identifier and the
// added date, which are written back to the entity.
func (r *PostgreSQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO posts (title, content, image_name, user_id, category_id, added_date, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, added_date, updated_at`

	err := querier.QueryRowContext(
		ctx, query, post.Title, post.Content, post.ImageName, post.UserID, post.CategoryID,
	).Scan(&post.ID, &post.AddedDate, &post.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create post")
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *PostgreSQLPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgresPostColumns + ` FROM posts WHERE id = $1`

	err := scanPostgresPost(querier.QueryRowContext(ctx, query, id), &post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(domain.ErrPostNotFound, "id %d", id)
		}
		return nil, apperrors.Wrap(err, "failed to get post by id")
	}

	return &post, nil
}

// GetByUser retrieves all posts owned by the given user
func (r *PostgreSQLPostRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	query := `SELECT ` + postgresPostColumns + ` FROM posts WHERE user_id = $1 ORDER BY id`
	return r.queryPosts(ctx, query, userID)
}

// GetByCategory retrieves all posts in the given category
func (r *PostgreSQLPostRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	query := `SELECT ` + postgresPostColumns + ` FROM posts WHERE category_id = $1 ORDER BY id`
	return r.queryPosts(ctx, query, categoryID)
}

// List retrieves a sorted window over the post set.
func (r *PostgreSQLPostRepository) List(ctx context.Context, params ListParams) ([]*domain.Post, error) {
	direction := "ASC"
	if params.Desc {
		direction = "DESC"
	}

	// SortColumn comes from the use case whitelist, never from raw input.
	query := fmt.Sprintf(
		`SELECT %s FROM posts ORDER BY %s %s LIMIT $1 OFFSET $2`,
		postgresPostColumns, params.SortColumn, direction,
	)
	return r.queryPosts(ctx, query, params.Limit, params.Offset)
}

// Count returns the total number of posts.
func (r *PostgreSQLPostRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count posts")
	}
	return count, nil
}

// Search retrieves all posts whose title or content contains the query as a
// case-insensitive substring. The single OR predicate deduplicates matches
// across the two fields.
func (r *PostgreSQLPostRepository) Search(ctx context.Context, search string) ([]*domain.Post, error) {
	query := `SELECT ` + postgresPostColumns + ` FROM posts
			  WHERE title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%'
			  ORDER BY id`
	return r.queryPosts(ctx, query, search)
}

// Update persists the mutable fields of an existing post
func (r *PostgreSQLPostRepository) Update(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE posts SET title = $1, content = $2, image_name = $3, updated_at = NOW()
			  WHERE id = $4`

	result, err := querier.ExecContext(ctx, query, post.Title, post.Content, post.ImageName, post.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update post")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrapf(domain.ErrPostNotFound, "id %d", post.ID)
	}
	return nil
}

// Delete removes a post by ID
func (r *PostgreSQLPostRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM posts WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete post")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrapf(domain.ErrPostNotFound, "id %d", id)
	}
	return nil
}

// queryPosts runs a post query and scans all rows.
func (r *PostgreSQLPostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query posts")
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := scanPostgresPost(rows, &post); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan post")
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate posts")
	}

	return posts, nil
}
