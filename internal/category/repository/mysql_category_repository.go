package repository

import (
	"context"
	"database/sql"
	"errors"

	"blogapp/internal/category/domain"
	"blogapp/internal/database"

	apperrors "blogapp/internal/errors"
)

// MySQLCategoryRepository handles category persistence for MySQL
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category. The auto-increment identifier is written back
// to the entity.
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (title, description, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query, category.Title, category.Description)
	if err != nil {
		return apperrors.Wrap(err, "failed to create category")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get inserted category id")
	}
	category.ID = id

	query = `SELECT created_at, updated_at FROM categories WHERE id = ?`
	err = querier.QueryRowContext(ctx, query, id).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to reload category")
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *MySQLCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, created_at, updated_at
			  FROM categories WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Title, &category.Description, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrapf(domain.ErrCategoryNotFound, "id %d", id)
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return &category, nil
}

// GetAll retrieves all categories ordered by identifier
func (r *MySQLCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, description, created_at, updated_at
			  FROM categories ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID, &category.Title, &category.Description, &category.CreatedAt, &category.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// Update persists the mutable fields of an existing category
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories SET title = ?, description = ?, updated_at = NOW()
			  WHERE id = ?`

	_, err := querier.ExecContext(ctx, query, category.Title, category.Description, category.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update category")
	}
	return nil
}

// Delete removes a category by ID
func (r *MySQLCategoryRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrapf(domain.ErrCategoryNotFound, "id %d", id)
	}
	return nil
}
