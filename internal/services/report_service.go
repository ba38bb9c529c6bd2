package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unnati04102007/ResQNet/domain"
)

// allowedImageExtensions is the upload allow-list for report images.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ReportServiceImpl implements domain.ReportService
type ReportServiceImpl struct {
	reportRepo      domain.ReportRepository
	imageStore      domain.ImageStore
	notificationSvc domain.NotificationService
	alertNumber     string
}

// NewReportService creates a new report service. alertNumber is the
// operations phone that receives SMS alerts; empty disables alerts.
func NewReportService(
	reportRepo domain.ReportRepository,
	imageStore domain.ImageStore,
	notificationSvc domain.NotificationService,
	alertNumber string,
) domain.ReportService {
	return &ReportServiceImpl{
		reportRepo:      reportRepo,
		imageStore:      imageStore,
		notificationSvc: notificationSvc,
		alertNumber:     alertNumber,
	}
}

// Submit implements domain.ReportService
func (s *ReportServiceImpl) Submit(ctx context.Context, userID uint, in domain.ReportInput, image *domain.ImageUpload) (*domain.Report, error) {
	if userID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, domain.NewValidationError("location", "location is required")
	}
	if strings.TrimSpace(in.DisasterType) == "" {
		return nil, domain.NewValidationError("disaster_type", "disaster type is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.NewValidationError("description", "description is required")
	}

	imagePath := ""
	if image != nil {
		stored, err := s.saveImage(image)
		if err != nil {
			return nil, err
		}
		imagePath = stored
	}

	report := &domain.Report{
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Location:     strings.TrimSpace(in.Location),
		DisasterType: strings.TrimSpace(in.DisasterType),
		Description:  strings.TrimSpace(in.Description),
		ImagePath:    imagePath,
		Status:       domain.ReportPending,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.alert(fmt.Sprintf("New %s report in %s (#%d)", report.DisasterType, report.Location, report.ID))

	return report, nil
}

// List implements domain.ReportService. Returns at most 20 most-recent rows.
func (s *ReportServiceImpl) List(ctx context.Context, disasterType, location string) ([]domain.Report, error) {
	return s.reportRepo.List(ctx, domain.ReportFilter{
		DisasterType: strings.TrimSpace(disasterType),
		Location:     strings.TrimSpace(location),
		Limit:        20,
	})
}

// UpdateStatus implements domain.ReportService. Status only advances from
// pending; verified and rejected reports stay put.
func (s *ReportServiceImpl) UpdateStatus(ctx context.Context, id uint, status domain.ReportStatus) (*domain.Report, error) {
	if status != domain.ReportVerified && status != domain.ReportRejected {
		return nil, domain.NewValidationError("status", "status must be verified or rejected")
	}

	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report.Status != domain.ReportPending {
		return nil, domain.ErrReportFinalized
	}

	if err := s.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}
	report.Status = status

	if status == domain.ReportVerified {
		s.alert(fmt.Sprintf("Report #%d verified: %s in %s", report.ID, report.DisasterType, report.Location))
	}

	return report, nil
}

// saveImage validates the extension allow-list and stores the file under a
// timestamp-prefixed name to avoid collisions.
func (s *ReportServiceImpl) saveImage(image *domain.ImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(image.Filename))
	if !allowedImageExtensions[ext] {
		return "", domain.ErrUnsupportedImage
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)
	path, err := s.imageStore.Save(name, image.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return path, nil
}

// alert sends a best-effort SMS to the operations number.
func (s *ReportServiceImpl) alert(message string) {
	if s.alertNumber == "" || s.notificationSvc == nil {
		return
	}
	if err := s.notificationSvc.SendSMS(s.alertNumber, message); err != nil {
		log.Printf("report alert SMS failed: %v", err)
	}
}
