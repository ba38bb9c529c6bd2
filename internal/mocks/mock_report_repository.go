package mocks

import (
	"context"

	"github.com/unnati04102007/ResQNet/domain"
)

// MockReportRepository implements domain.ReportRepository interface for testing
type MockReportRepository struct {
	CreateFunc       func(ctx context.Context, report *domain.Report) error
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Report, error)
	ListFunc         func(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status domain.ReportStatus) error
}

// NewMockReportRepository creates a new MockReportRepository with default behaviors
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

// Create creates a new report
func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	// Default behavior: success
	report.ID = 1
	return nil
}

// FindByID finds a report by ID
func (m *MockReportRepository) FindByID(ctx context.Context, id uint) (*domain.Report, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrReportNotFound
}

// List lists reports matching the filter
func (m *MockReportRepository) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	// Default behavior: empty list
	return []domain.Report{}, nil
}

// UpdateStatus updates a report's status
func (m *MockReportRepository) UpdateStatus(ctx context.Context, id uint, status domain.ReportStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ReportRepository = (*MockReportRepository)(nil)
