package mocks

import (
	"context"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockCheckoutProvider implements domain.CheckoutProvider interface for testing
type MockCheckoutProvider struct {
	ConfiguredFunc      func() bool
	CreateSessionFunc   func(ctx context.Context, draft *domain.CheckoutDraft, unitAmount int64) (*domain.CheckoutSession, error)
	RetrieveSessionFunc func(ctx context.Context, id string) (*domain.CheckoutSession, error)
}

// NewMockCheckoutProvider creates a new MockCheckoutProvider with default behaviors
func NewMockCheckoutProvider() *MockCheckoutProvider {
	return &MockCheckoutProvider{}
}

// Configured reports whether the provider has credentials
func (m *MockCheckoutProvider) Configured() bool {
	if m.ConfiguredFunc != nil {
		return m.ConfiguredFunc()
	}
	// Default behavior: configured
	return true
}

// CreateSession opens a hosted checkout session
func (m *MockCheckoutProvider) CreateSession(ctx context.Context, draft *domain.CheckoutDraft, unitAmount int64) (*domain.CheckoutSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, draft, unitAmount)
	}
	// Default behavior: fixed session
	return &domain.CheckoutSession{
		ID:  "cs_test_mock",
		URL: "https://checkout.example.com/cs_test_mock",
	}, nil
}

// RetrieveSession fetches a checkout session by id
func (m *MockCheckoutProvider) RetrieveSession(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	if m.RetrieveSessionFunc != nil {
		return m.RetrieveSessionFunc(ctx, id)
	}
	// Default behavior: echo the id back
	return &domain.CheckoutSession{ID: id}, nil
}

// Compile-time interface compliance verification
var _ domain.CheckoutProvider = (*MockCheckoutProvider)(nil)
