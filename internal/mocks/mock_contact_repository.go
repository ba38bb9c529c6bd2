package mocks

import (
	"context"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	CreateFunc func(ctx context.Context, message *domain.ContactMessage) error
}

// NewMockContactRepository creates a new MockContactRepository with default behaviors
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// Create persists a contact message
func (m *MockContactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	// Default behavior: success
	message.ID = 1
	return nil
}

// Compile-time interface compliance verification
var _ domain.ContactRepository = (*MockContactRepository)(nil)
