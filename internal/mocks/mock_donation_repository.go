package mocks

import (
	"context"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockDonationRepository implements domain.DonationRepository interface for testing
type MockDonationRepository struct {
	CreateFunc func(ctx context.Context, donation *domain.Donation) error
	ListFunc   func(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
}

// NewMockDonationRepository creates a new MockDonationRepository with default behaviors
func NewMockDonationRepository() *MockDonationRepository {
	return &MockDonationRepository{}
}

// Create creates a new donation
func (m *MockDonationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, donation)
	}
	// Default behavior: success
	donation.ID = 1
	return nil
}

// List lists donations matching the filter
func (m *MockDonationRepository) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty list
	return []domain.Donation{}, nil
}

// Compile-time interface compliance verification
var _ domain.DonationRepository = (*MockDonationRepository)(nil)
