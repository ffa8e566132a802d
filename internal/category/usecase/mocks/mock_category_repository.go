// Package mocks provides mock implementations for testing category use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/category/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository for testing.
type MockCategoryRepository struct {
	mock.Mock
}

// Create mocks the Create method of CategoryRepository.
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// GetByID mocks the GetByID method of CategoryRepository.
func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// GetAll mocks the GetAll method of CategoryRepository.
func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// Update mocks the Update method of CategoryRepository.
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// Delete mocks the Delete method of CategoryRepository.
func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
