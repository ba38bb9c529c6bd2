package mocks

import "github.com/unnati04102007/ResQNet/domain"

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	// Sent records every message delivered through the default behavior.
	Sent []SentSMS
}

// SentSMS captures one recorded message
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS sends an SMS message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentSMS{To: to, Message: message})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
