package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/unnati04102007/ResQNet/domain"
)

// VolunteerServiceImpl implements domain.VolunteerService
type VolunteerServiceImpl struct {
	volunteerRepo domain.VolunteerRepository
}

// NewVolunteerService creates a new volunteer service
func NewVolunteerService(volunteerRepo domain.VolunteerRepository) domain.VolunteerService {
	return &VolunteerServiceImpl{volunteerRepo: volunteerRepo}
}

// Register implements domain.VolunteerService
func (s *VolunteerServiceImpl) Register(ctx context.Context, name, contact, skills, location string) (*domain.Volunteer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(contact) == "" {
		return nil, domain.NewValidationError("contact", "contact is required")
	}

	volunteer := &domain.Volunteer{
		Name:      strings.TrimSpace(name),
		Contact:   strings.TrimSpace(contact),
		Skills:    strings.TrimSpace(skills),
		Location:  strings.TrimSpace(location),
		Available: true,
	}

	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("failed to register volunteer: %w", err)
	}

	return volunteer, nil
}

// List implements domain.VolunteerService
func (s *VolunteerServiceImpl) List(ctx context.Context, onlyAvailable bool, limit int) ([]domain.Volunteer, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.volunteerRepo.List(ctx, onlyAvailable, limit)
}
