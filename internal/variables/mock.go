package variables

import (
	"context"
	"errors"
	"sync"

	"vardeck/internal/domain"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("variables.MockClient: method not implemented")

// MockClient is a test double for Client.
type MockClient struct {
	CreateFn func(context.Context, domain.CreateRequest) (domain.Variable, error)
	ListFn   func(context.Context) ([]domain.Variable, error)

	mu              sync.Mutex
	CreateCallCount int
	ListCallCount   int
	CreateCallArgs  []domain.CreateRequest
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Create invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error) {
	m.mu.Lock()
	m.CreateCallCount++
	m.CreateCallArgs = append(m.CreateCallArgs, req)
	m.mu.Unlock()
	if m.CreateFn == nil {
		return domain.Variable{}, ErrMockNotImplemented
	}
	return m.CreateFn(ctx, req)
}

// List invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) List(ctx context.Context) ([]domain.Variable, error) {
	m.mu.Lock()
	m.ListCallCount++
	m.mu.Unlock()
	if m.ListFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListFn(ctx)
}

// Creates returns the number of Create calls so far.
func (m *MockClient) Creates() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCallCount
}

// Lists returns the number of List calls so far.
func (m *MockClient) Lists() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCallCount
}
