// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogapp/internal/user/domain"
	"blogapp/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of the user UseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// CreateUser mocks the CreateUser method.
func (m *MockUserUseCase) CreateUser(ctx context.Context, input usecase.UserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// UpdateUser mocks the UpdateUser method.
func (m *MockUserUseCase) UpdateUser(ctx context.Context, userID int64, input usecase.UserInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetUserByID mocks the GetUserByID method.
func (m *MockUserUseCase) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetAllUsers mocks the GetAllUsers method.
func (m *MockUserUseCase) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// DeleteUser mocks the DeleteUser method.
func (m *MockUserUseCase) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
