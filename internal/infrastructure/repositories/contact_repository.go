package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/domain"
)

// ContactRepositoryImpl implements domain.ContactRepository using GORM
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// DBContactMessage represents the database model for ContactMessage
type DBContactMessage struct {
	ID             uint   `gorm:"primaryKey"`
	EnquiryType    string `gorm:"size:120"`
	Segment        string `gorm:"size:120"`
	Name           string `gorm:"size:120"`
	Email          string `gorm:"size:255"`
	Phone          string `gorm:"size:32"`
	Description    string `gorm:"type:text"`
	TimeSlot       string `gorm:"size:64"`
	CaptchaEntered string `gorm:"size:16"`
	CreatedAt      time.Time
}

// TableName returns the table name for GORM
func (DBContactMessage) TableName() string {
	return "contact_messages"
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// Create implements domain.ContactRepository
func (r *ContactRepositoryImpl) Create(ctx context.Context, message *domain.ContactMessage) error {
	dbMessage := &DBContactMessage{
		EnquiryType:    message.EnquiryType,
		Segment:        message.Segment,
		Name:           message.Name,
		Email:          message.Email,
		Phone:          message.Phone,
		Description:    message.Description,
		TimeSlot:       message.TimeSlot,
		CaptchaEntered: message.CaptchaEntered,
	}
	if err := r.db.WithContext(ctx).Create(dbMessage).Error; err != nil {
		return err
	}
	message.ID = dbMessage.ID
	message.CreatedAt = dbMessage.CreatedAt
	return nil
}
