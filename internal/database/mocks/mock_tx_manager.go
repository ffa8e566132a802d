// Package mocks provides mock implementations for testing database components.
package mocks

import (
	"context"
)

// MockTxManager is a TxManager that runs the function directly, without a
// real transaction. BeginErr, when set, is returned instead.
type MockTxManager struct {
	BeginErr error
	Calls    int
}

// WithTx runs fn with the unchanged context.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx)
}
