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

// MySQLPostRepository handles post persistence for MySQL
type MySQLPostRepository struct {
	db *sql.DB
}

// NewMySQLPostRepository creates a new MySQLPostRepository
func NewMySQLPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{
		db: db,
	}
}

const mysqlPostColumns = `id, title, content, image_name, added_date, user_id, category_id, updated_at`

func scanMySQLPost(row interface{ Scan(dest ...any) error }, post *domain.Post) error {
	return row.Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageName, &post.AddedDate,
		&post.UserID, &post.CategoryID, &post.UpdatedAt,
	)
}

// Create inserts a new post. The auto-increment identifier is written back to
// the entity.
func (r *MySQLPostRepository) Create(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO posts (title, content, image_name, user_id, category_id, added_date, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(
		ctx, query, post.Title, post.Content, post.ImageName, post.UserID, post.CategoryID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create post")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted post id")
	}
	post.ID = id

	return r.refresh(ctx, post)
}

// refresh re-reads database-assigned columns after an insert.
func (r *MySQLPostRepository) refresh(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT added_date, updated_at FROM posts WHERE id = ?`
	err := querier.QueryRowContext(ctx, query, post.ID).Scan(&post.AddedDate, &post.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to reload post")
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *MySQLPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlPostColumns + ` FROM posts WHERE id = ?`

	err := scanMySQLPost(querier.QueryRowContext(ctx, query, id), &post)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(domain.ErrPostNotFound, "id %d", id)
		}
		return nil, apperrors.Wrap(err, "failed to get post by id")
	}

	return &post, nil
}

// GetByUser retrieves all posts owned by the given user
func (r *MySQLPostRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	query := `SELECT ` + mysqlPostColumns + ` FROM posts WHERE user_id = ? ORDER BY id`
	return r.queryPosts(ctx, query, userID)
}

// GetByCategory retrieves all posts in the given category
func (r *MySQLPostRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	query := `SELECT ` + mysqlPostColumns + ` FROM posts WHERE category_id = ? ORDER BY id`
	return r.queryPosts(ctx, query, categoryID)
}

// List retrieves a sorted window over the post set.
func (r *MySQLPostRepository) List(ctx context.Context, params ListParams) ([]*domain.Post, error) {
	direction := "ASC"
	if params.Desc {
		direction = "DESC"
	}

	// SortColumn comes from the use case whitelist, never from raw input.
	query := fmt.Sprintf(
		`SELECT %s FROM posts ORDER BY %s %s LIMIT ? OFFSET ?`,
		mysqlPostColumns, params.SortColumn, direction,
	)
	return r.queryPosts(ctx, query, params.Limit, params.Offset)
}

// Count returns the total number of posts.
func (r *MySQLPostRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count posts")
	}
	return count, nil
}

// Search retrieves all posts whose title or content contains the query as a
// case-insensitive substring.
func (r *MySQLPostRepository) Search(ctx context.Context, search string) ([]*domain.Post, error) {
	query := `SELECT ` + mysqlPostColumns + ` FROM posts
			  WHERE LOWER(title) LIKE CONCAT('%', LOWER(?), '%')
			     OR LOWER(content) LIKE CONCAT('%', LOWER(?), '%')
			  ORDER BY id`
	return r.queryPosts(ctx, query, search, search)
}

// Update persists the mutable fields of an existing post
func (r *MySQLPostRepository) Update(ctx context.Context, post *domain.Post) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE posts SET title = ?, content = ?, image_name = ?, updated_at = NOW()
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, post.Title, post.Content, post.ImageName, post.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update post")
	}
	return nil
}

// Delete removes a post by ID
func (r *MySQLPostRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM posts WHERE id = ?`

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
func (r *MySQLPostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]*domain.Post, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query posts")
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := scanMySQLPost(rows, &post); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan post")
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate posts")
	}

	return posts, nil
}
