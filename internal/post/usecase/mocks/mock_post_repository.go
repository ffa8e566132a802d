// Package mocks provides mock implementations for testing post use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/post/domain"
	"blogapp/internal/post/repository"
)

// MockPostRepository is a mock implementation of PostRepository for testing.
type MockPostRepository struct {
	mock.Mock
}

// Create mocks the Create method of PostRepository.
func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// GetByID mocks the GetByID method of PostRepository.
func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

// GetByUser mocks the GetByUser method of PostRepository.
func (m *MockPostRepository) GetByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// GetByCategory mocks the GetByCategory method of PostRepository.
func (m *MockPostRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Post, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// List mocks the List method of PostRepository.
func (m *MockPostRepository) List(ctx context.Context, params repository.ListParams) ([]*domain.Post, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// Count mocks the Count method of PostRepository.
func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Search mocks the Search method of PostRepository.
func (m *MockPostRepository) Search(ctx context.Context, search string) ([]*domain.Post, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

// Update mocks the Update method of PostRepository.
func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// Delete mocks the Delete method of PostRepository.
func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
