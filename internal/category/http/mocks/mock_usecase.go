// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/category/domain"
	"blogapp/internal/category/usecase"
)

// MockCategoryUseCase is a mock implementation of the category UseCase for testing.
type MockCategoryUseCase struct {
	mock.Mock
}

// CreateCategory mocks the CreateCategory method.
func (m *MockCategoryUseCase) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// UpdateCategory mocks the UpdateCategory method.
func (m *MockCategoryUseCase) UpdateCategory(
	ctx context.Context,
	categoryID int64,
	input usecase.CategoryInput,
) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// GetCategoryByID mocks the GetCategoryByID method.
func (m *MockCategoryUseCase) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// GetAllCategories mocks the GetAllCategories method.
func (m *MockCategoryUseCase) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// DeleteCategory mocks the DeleteCategory method.
func (m *MockCategoryUseCase) DeleteCategory(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}
