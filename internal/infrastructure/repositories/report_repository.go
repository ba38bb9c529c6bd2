package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/domain"
)

// ReportRepositoryImpl implements domain.ReportRepository using GORM
type ReportRepositoryImpl struct {
	db *gorm.DB
}

// DBReport represents the database model for Report (with GORM tags)
type DBReport struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"index;not null"`
	User         DBUser    `gorm:"constraint:OnDelete:CASCADE"`
	Name         string    `gorm:"size:120"`
	Email        string    `gorm:"size:255"`
	Location     string    `gorm:"size:255;index"`
	DisasterType string    `gorm:"size:120;index"`
	Description  string    `gorm:"type:text"`
	ImagePath    string    `gorm:"size:255"`
	Status       string    `gorm:"size:16;index;default:pending"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBReport) TableName() string {
	return "reports"
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domain.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

// Create implements domain.ReportRepository
func (r *ReportRepositoryImpl) Create(ctx context.Context, report *domain.Report) error {
	dbReport := &DBReport{
		UserID:       report.UserID,
		Name:         report.Name,
		Email:        report.Email,
		Location:     report.Location,
		DisasterType: report.DisasterType,
		Description:  report.Description,
		ImagePath:    report.ImagePath,
		Status:       string(report.Status),
	}
	if err := r.db.WithContext(ctx).Create(dbReport).Error; err != nil {
		return err
	}
	report.ID = dbReport.ID
	report.CreatedAt = dbReport.CreatedAt
	return nil
}

// FindByID implements domain.ReportRepository
func (r *ReportRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Report, error) {
	var dbReport DBReport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbReport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbReport), nil
}

// List implements domain.ReportRepository. Results are newest first.
func (r *ReportRepositoryImpl) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Model(&DBReport{}).Order("created_at DESC").Limit(limit)
	if filter.DisasterType != "" {
		q = q.Where("disaster_type = ?", filter.DisasterType)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var dbReports []DBReport
	if err := q.Find(&dbReports).Error; err != nil {
		return nil, err
	}

	reports := make([]domain.Report, 0, len(dbReports))
	for i := range dbReports {
		reports = append(reports, *r.dbToDomain(&dbReports[i]))
	}
	return reports, nil
}

// UpdateStatus implements domain.ReportRepository
func (r *ReportRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status domain.ReportStatus) error {
	result := r.db.WithContext(ctx).Model(&DBReport{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *ReportRepositoryImpl) dbToDomain(dbReport *DBReport) *domain.Report {
	return &domain.Report{
		ID:           dbReport.ID,
		UserID:       dbReport.UserID,
		Name:         dbReport.Name,
		Email:        dbReport.Email,
		Location:     dbReport.Location,
		DisasterType: dbReport.DisasterType,
		Description:  dbReport.Description,
		ImagePath:    dbReport.ImagePath,
		Status:       domain.ReportStatus(dbReport.Status),
		CreatedAt:    dbReport.CreatedAt,
	}
}
