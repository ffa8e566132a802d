package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapp/internal/category/domain"
	"blogapp/internal/category/usecase/mocks"

	apperrors "blogapp/internal/errors"
)

func createTestCategory(id int64) *domain.Category {
	return &domain.Category{
		ID:          id,
		Title:       "Technology",
		Description: "Posts about technology",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestCategoryUseCase_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

		uc := NewCategoryUseCase(mockRepo)

		category, err := uc.CreateCategory(ctx, CategoryInput{
			Title:       "Technology",
			Description: "Posts about technology",
		})
		require.NoError(t, err)
		assert.Equal(t, "Technology", category.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ValidationError_MissingTitle", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		uc := NewCategoryUseCase(mockRepo)

		_, err := uc.CreateCategory(ctx, CategoryInput{Description: "no title"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ValidationError_BlankTitle", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		uc := NewCategoryUseCase(mockRepo)

		_, err := uc.CreateCategory(ctx, CategoryInput{Title: "\t\n", Description: "blank"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestCategoryUseCase_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(1)).Return(createTestCategory(1), nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

		uc := NewCategoryUseCase(mockRepo)

		category, err := uc.UpdateCategory(ctx, 1, CategoryInput{
			Title:       "Science",
			Description: "Posts about science",
		})
		require.NoError(t, err)
		assert.Equal(t, "Science", category.Title)
		assert.Equal(t, "Posts about science", category.Description)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrCategoryNotFound).Once()

		uc := NewCategoryUseCase(mockRepo)

		_, err := uc.UpdateCategory(ctx, 42, CategoryInput{Title: "Science", Description: "d"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCategoryUseCase_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(1)).Return(createTestCategory(1), nil).Once()
		mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()

		uc := NewCategoryUseCase(mockRepo)

		require.NoError(t, uc.DeleteCategory(ctx, 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(mocks.MockCategoryRepository)
		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrCategoryNotFound).Once()

		uc := NewCategoryUseCase(mockRepo)

		err := uc.DeleteCategory(ctx, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCategoryUseCase_GetAllCategories(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.MockCategoryRepository)
	mockRepo.On("GetAll", ctx).
		Return([]*domain.Category{createTestCategory(1), createTestCategory(2)}, nil).Once()

	uc := NewCategoryUseCase(mockRepo)

	categories, err := uc.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
