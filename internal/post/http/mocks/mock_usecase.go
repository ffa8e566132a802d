// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/post/domain"
	"blogapp/internal/post/usecase"
)

// MockPostUseCase is a mock implementation of the post UseCase for testing.
type MockPostUseCase struct {
	mock.Mock
}

// CreatePost mocks the CreatePost method.
func (m *MockPostUseCase) CreatePost(
	ctx context.Context,
	userID, categoryID int64,
	input usecase.PostInput,
) (*domain.Post, error) {
	args := m.Called(ctx, userID, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// UpdatePost mocks the UpdatePost method.
func (m *MockPostUseCase) UpdatePost(ctx context.Context, postID int64, input usecase.PostInput) (*domain.Post, error) {
	args := m.Called(ctx, postID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// GetPostByID mocks the GetPostByID method.
func (m *MockPostUseCase) GetPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// GetPostsByUser mocks the GetPostsByUser method.
func (m *MockPostUseCase) GetPostsByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// GetPostsByCategory mocks the GetPostsByCategory method.
func (m *MockPostUseCase) GetPostsByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// ListPosts mocks the ListPosts method.
func (m *MockPostUseCase) ListPosts(ctx context.Context, query domain.PageQuery) (*domain.Page, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

// SearchPosts mocks the SearchPosts method.
func (m *MockPostUseCase) SearchPosts(ctx context.Context, search string) ([]*domain.Post, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// DeletePost mocks the DeletePost method.
func (m *MockPostUseCase) DeletePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// SetPostImage mocks the SetPostImage method.
func (m *MockPostUseCase) SetPostImage(ctx context.Context, postID int64, imageName string) (*domain.Post, error) {
	args := m.Called(ctx, postID, imageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}
