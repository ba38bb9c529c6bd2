package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/domain"
)

// DonationRepositoryImpl implements domain.DonationRepository using GORM
type DonationRepositoryImpl struct {
	db *gorm.DB
}

// DBDonation represents the database model for Donation (with GORM tags).
// PaymentReference is a pointer so that absent references stay NULL and do
// not collide on the unique index.
type DBDonation struct {
	ID               uint      `gorm:"primaryKey"`
	DonorName        string    `gorm:"size:120;not null"`
	DonorEmail       string    `gorm:"size:255;not null"`
	Amount           float64   `gorm:"type:decimal(12,2);not null"`
	Currency         string    `gorm:"size:3;not null;default:USD"`
	Purpose          string    `gorm:"type:text"`
	PaymentProvider  string    `gorm:"size:64;index"`
	PaymentMethod    string    `gorm:"size:64"`
	PaymentReference *string   `gorm:"uniqueIndex;size:255"`
	Status           string    `gorm:"size:16;index;not null;default:pending"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBDonation) TableName() string {
	return "donations"
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) domain.DonationRepository {
	return &DonationRepositoryImpl{db: db}
}

// Create implements domain.DonationRepository
func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *domain.Donation) error {
	dbDonation := &DBDonation{
		DonorName:       donation.DonorName,
		DonorEmail:      donation.DonorEmail,
		Amount:          donation.Amount,
		Currency:        donation.Currency,
		Purpose:         donation.Purpose,
		PaymentProvider: donation.PaymentProvider,
		PaymentMethod:   donation.PaymentMethod,
		Status:          string(donation.Status),
	}
	if donation.PaymentReference != "" {
		ref := donation.PaymentReference
		dbDonation.PaymentReference = &ref
	}

	if err := r.db.WithContext(ctx).Create(dbDonation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateReference
		}
		return err
	}
	donation.ID = dbDonation.ID
	donation.CreatedAt = dbDonation.CreatedAt
	donation.UpdatedAt = dbDonation.UpdatedAt
	return nil
}

// List implements domain.DonationRepository. Results are newest first.
func (r *DonationRepositoryImpl) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Model(&DBDonation{}).Order("created_at DESC").Limit(limit)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Provider != "" {
		q = q.Where("payment_provider = ?", filter.Provider)
	}

	var dbDonations []DBDonation
	if err := q.Find(&dbDonations).Error; err != nil {
		return nil, err
	}

	donations := make([]domain.Donation, 0, len(dbDonations))
	for i := range dbDonations {
		donations = append(donations, *r.dbToDomain(&dbDonations[i]))
	}
	return donations, nil
}

func (r *DonationRepositoryImpl) dbToDomain(dbDonation *DBDonation) *domain.Donation {
	donation := &domain.Donation{
		ID:              dbDonation.ID,
		DonorName:       dbDonation.DonorName,
		DonorEmail:      dbDonation.DonorEmail,
		Amount:          dbDonation.Amount,
		Currency:        dbDonation.Currency,
		Purpose:         dbDonation.Purpose,
		PaymentProvider: dbDonation.PaymentProvider,
		PaymentMethod:   dbDonation.PaymentMethod,
		Status:          domain.DonationStatus(dbDonation.Status),
		CreatedAt:       dbDonation.CreatedAt,
		UpdatedAt:       dbDonation.UpdatedAt,
	}
	if dbDonation.PaymentReference != nil {
		donation.PaymentReference = *dbDonation.PaymentReference
	}
	return donation
}
