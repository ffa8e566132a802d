// Package usecase implements the category business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"blogapp/internal/category/domain"
	appValidation "blogapp/internal/validation"
)

// CategoryInput contains the input data for category creation and update
type CategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UseCase defines the interface for category business logic operations
type UseCase interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, input CategoryInput) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	GetAllCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepository interface defines category repository operations
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

// CategoryUseCase handles category-related business logic
type CategoryUseCase struct {
	categoryRepo CategoryRepository
}

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(categoryRepo CategoryRepository) UseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// validateCategoryInput validates creation/update input
func (uc *CategoryUseCase) validateCategoryInput(input CategoryInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateCategory creates a new category
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if err := uc.validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory overwrites the title and description of an existing category.
// Fails with a not-found error if the category does not exist.
func (uc *CategoryUseCase) UpdateCategory(
	ctx context.Context,
	categoryID int64,
	input CategoryInput,
) (*domain.Category, error) {
	if err := uc.validateCategoryInput(input); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Title = strings.TrimSpace(input.Title)
	category.Description = input.Description

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategoryByID retrieves a category by ID
func (uc *CategoryUseCase) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, categoryID)
}

// GetAllCategories retrieves all categories
func (uc *CategoryUseCase) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.GetAll(ctx)
}

// DeleteCategory removes a category by ID.
// Posts referencing the category are removed by the database cascade.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, categoryID int64) error {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, categoryID)
}
