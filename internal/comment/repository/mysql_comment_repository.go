package repository

import (
	"context"
	"database/sql"
	"errors"

	"blogapp/internal/comment/domain"
	"blogapp/internal/database"

	apperrors "blogapp/internal/errors"
)

// MySQLCommentRepository handles comment persistence for MySQL
type MySQLCommentRepository struct {
	db *sql.DB
}

// NewMySQLCommentRepository creates a new MySQLCommentRepository
func NewMySQLCommentRepository(db *sql.DB) *MySQLCommentRepository {
	return &MySQLCommentRepository{
		db: db,
	}
}

// Create inserts a new comment. The auto-increment identifier is written back
// to the entity.
func (r *MySQLCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO comments (content, post_id, created_at) VALUES (?, ?, NOW())`

	result, err := querier.ExecContext(ctx, query, comment.Content, comment.PostID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create comment")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted comment id")
	}
	comment.ID = id

	return r.refresh(ctx, comment)
}

// refresh re-reads database-assigned columns after an insert.
func (r *MySQLCommentRepository) refresh(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT created_at FROM comments WHERE id = ?`
	err := querier.QueryRowContext(ctx, query, comment.ID).Scan(&comment.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to reload comment")
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *MySQLCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, content, post_id, created_at FROM comments WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.Content, &comment.PostID, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(domain.ErrCommentNotFound, "id %d", id)
		}
		return nil, apperrors.Wrap(err, "failed to get comment by id")
	}

	return &comment, nil
}

// GetByPost retrieves all comments attached to the given post
func (r *MySQLCommentRepository) GetByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, content, post_id, created_at FROM comments WHERE post_id = ? ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list comments")
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(&comment.ID, &comment.Content, &comment.PostID, &comment.CreatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan comment")
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate comments")
	}

	return comments, nil
}

// Delete removes a comment by ID
func (r *MySQLCommentRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM comments WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete comment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrapf(domain.ErrCommentNotFound, "id %d", id)
	}
	return nil
}
