// Package mocks provides mock implementations for testing comment use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/comment/domain"
)

// MockCommentRepository is a mock implementation of CommentRepository for testing.
type MockCommentRepository struct {
	mock.Mock
}

// Create mocks the Create method of CommentRepository.
func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// GetByID mocks the GetByID method of CommentRepository.
func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

// GetByPost mocks the GetByPost method of CommentRepository.
func (m *MockCommentRepository) GetByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

// Delete mocks the Delete method of CommentRepository.
func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
