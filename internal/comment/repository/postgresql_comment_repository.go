// Package repository provides data persistence implementations for comment entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"blogapp/internal/comment/domain"
	"blogapp/internal/database"

	apperrors "blogapp/internal/errors"
)

// PostgreSQLCommentRepository handles comment persistence for PostgreSQL
type PostgreSQLCommentRepository struct {
	db *sql.DB
}

// NewPostgreSQLCommentRepository creates a new PostgreSQLCommentRepository
func NewPostgreSQLCommentRepository(db *sql.DB) *PostgreSQLCommentRepository {
	return &PostgreSQLCommentRepository{
		db: db,
	}
}

// Create inserts a new comment. The database assigns the identifier and the
// creation time, which are written back to the entity.
func (r *PostgreSQLCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO comments (content, post_id, created_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, created_at`

	err := querier.QueryRowContext(ctx, query, comment.Content, comment.PostID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create comment")
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *PostgreSQLCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, content, post_id, created_at FROM comments WHERE id = $1`

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
func (r *PostgreSQLCommentRepository) GetByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, content, post_id, created_at FROM comments WHERE post_id = $1 ORDER BY id`

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
func (r *PostgreSQLCommentRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM comments WHERE id = $1`

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
