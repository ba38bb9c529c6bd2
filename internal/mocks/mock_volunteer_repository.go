package mocks

import (
	"context"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockVolunteerRepository implements domain.VolunteerRepository interface for testing
type MockVolunteerRepository struct {
	CreateFunc func(ctx context.Context, volunteer *domain.Volunteer) error
	ListFunc   func(ctx context.Context, onlyAvailable bool, limit int) ([]domain.Volunteer, error)
}

// NewMockVolunteerRepository creates a new MockVolunteerRepository with default behaviors
func NewMockVolunteerRepository() *MockVolunteerRepository {
	return &MockVolunteerRepository{}
}

// Create registers a new volunteer
func (m *MockVolunteerRepository) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, volunteer)
	}
	// Default behavior: success
	volunteer.ID = 1
	return nil
}

// List lists volunteers
func (m *MockVolunteerRepository) List(ctx context.Context, onlyAvailable bool, limit int) ([]domain.Volunteer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, onlyAvailable, limit)
	}
	// Default behavior: empty list
	return []domain.Volunteer{}, nil
}

// Compile-time interface compliance verification
var _ domain.VolunteerRepository = (*MockVolunteerRepository)(nil)
