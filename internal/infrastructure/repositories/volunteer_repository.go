package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/domain"
)

// VolunteerRepositoryImpl implements domain.VolunteerRepository using GORM
type VolunteerRepositoryImpl struct {
	db *gorm.DB
}

// DBVolunteer represents the database model for Volunteer
type DBVolunteer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:120;not null"`
	Contact   string `gorm:"size:120"`
	Skills    string `gorm:"size:255"`
	Location  string `gorm:"size:255;index"`
	Available bool   `gorm:"index"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBVolunteer) TableName() string {
	return "volunteers"
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) domain.VolunteerRepository {
	return &VolunteerRepositoryImpl{db: db}
}

// Create implements domain.VolunteerRepository
func (r *VolunteerRepositoryImpl) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	dbVolunteer := &DBVolunteer{
		Name:      volunteer.Name,
		Contact:   volunteer.Contact,
		Skills:    volunteer.Skills,
		Location:  volunteer.Location,
		Available: volunteer.Available,
	}
	if err := r.db.WithContext(ctx).Create(dbVolunteer).Error; err != nil {
		return err
	}
	volunteer.ID = dbVolunteer.ID
	volunteer.CreatedAt = dbVolunteer.CreatedAt
	return nil
}

// List implements domain.VolunteerRepository
func (r *VolunteerRepositoryImpl) List(ctx context.Context, onlyAvailable bool, limit int) ([]domain.Volunteer, error) {
	if limit <= 0 {
		limit = 100
	}

	q := r.db.WithContext(ctx).Model(&DBVolunteer{}).Order("created_at DESC").Limit(limit)
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}

	var dbVolunteers []DBVolunteer
	if err := q.Find(&dbVolunteers).Error; err != nil {
		return nil, err
	}

	volunteers := make([]domain.Volunteer, 0, len(dbVolunteers))
	for _, v := range dbVolunteers {
		volunteers = append(volunteers, domain.Volunteer{
			ID:        v.ID,
			Name:      v.Name,
			Contact:   v.Contact,
			Skills:    v.Skills,
			Location:  v.Location,
			Available: v.Available,
			CreatedAt: v.CreatedAt,
		})
	}
	return volunteers, nil
}
