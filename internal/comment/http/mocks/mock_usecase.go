// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/comment/domain"
	"blogapp/internal/comment/usecase"
)

// MockCommentUseCase is a mock implementation of the comment UseCase for testing.
type MockCommentUseCase struct {
	mock.Mock
}

// CreateComment mocks the CreateComment method.
func (m *MockCommentUseCase) CreateComment(
	ctx context.Context,
	postID int64,
	input usecase.CommentInput,
) (*domain.Comment, error) {
	args := m.Called(ctx, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

// GetCommentsByPost mocks the GetCommentsByPost method.
func (m *MockCommentUseCase) GetCommentsByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

// DeleteComment mocks the DeleteComment method.
func (m *MockCommentUseCase) DeleteComment(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}
