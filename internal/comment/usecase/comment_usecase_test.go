package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapp/internal/comment/domain"
	"blogapp/internal/comment/usecase/mocks"
	postdomain "blogapp/internal/post/domain"
	postMocks "blogapp/internal/post/usecase/mocks"

	apperrors "blogapp/internal/errors"
)

func createTestComment(id int64) *domain.Comment {
	return &domain.Comment{
		ID:        id,
		Content:   "Nice post!",
		PostID:    1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCommentUseCase_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockPostRepo.On("GetByID", ctx, int64(1)).Return(&postdomain.Post{ID: 1}, nil).Once()
		mockCommentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		comment, err := uc.CreateComment(ctx, 1, CommentInput{Content: "Nice post!"})
		require.NoError(t, err)
		assert.Equal(t, "Nice post!", comment.Content)
		assert.Equal(t, int64(1), comment.PostID)
		mockCommentRepo.AssertExpectations(t)
	})

	t.Run("PostNotFound_NoWrite", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockPostRepo.On("GetByID", ctx, int64(42)).Return(nil, postdomain.ErrPostNotFound).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		_, err := uc.CreateComment(ctx, 42, CommentInput{Content: "Nice post!"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ValidationError_EmptyContent", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		_, err := uc.CreateComment(ctx, 1, CommentInput{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		mockPostRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestCommentUseCase_GetCommentsByPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockPostRepo.On("GetByID", ctx, int64(1)).Return(&postdomain.Post{ID: 1}, nil).Once()
		mockCommentRepo.On("GetByPost", ctx, int64(1)).
			Return([]*domain.Comment{createTestComment(1), createTestComment(2)}, nil).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		comments, err := uc.GetCommentsByPost(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("NoCommentsReturnsEmptySlice", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockPostRepo.On("GetByID", ctx, int64(1)).Return(&postdomain.Post{ID: 1}, nil).Once()
		mockCommentRepo.On("GetByPost", ctx, int64(1)).Return(nil, nil).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		comments, err := uc.GetCommentsByPost(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockPostRepo.On("GetByID", ctx, int64(42)).Return(nil, postdomain.ErrPostNotFound).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		_, err := uc.GetCommentsByPost(ctx, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCommentUseCase_DeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockCommentRepo.On("GetByID", ctx, int64(1)).Return(createTestComment(1), nil).Once()
		mockCommentRepo.On("Delete", ctx, int64(1)).Return(nil).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		require.NoError(t, uc.DeleteComment(ctx, 1))
		mockCommentRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockCommentRepo := new(mocks.MockCommentRepository)
		mockPostRepo := new(postMocks.MockPostRepository)

		mockCommentRepo.On("GetByID", ctx, int64(42)).
			Return(nil, domain.ErrCommentNotFound).Once()

		uc := NewCommentUseCase(mockCommentRepo, mockPostRepo)

		err := uc.DeleteComment(ctx, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockCommentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
