// Package mocks provides mock implementations for testing storage consumers.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockImageStorage is a mock implementation of ImageStorage for testing.
type MockImageStorage struct {
	mock.Mock
}

// Save mocks the Save method of ImageStorage.
func (m *MockImageStorage) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalName, r)
	return args.String(0), args.Error(1)
}

// Open mocks the Open method of ImageStorage.
func (m *MockImageStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// Close mocks the Close method of ImageStorage.
func (m *MockImageStorage) Close() error {
	args := m.Called()
	return args.Error(0)
}
