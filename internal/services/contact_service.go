package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/unnati04102007/ResQNet/domain"
)

const (
	captchaLength  = 7
	captchaCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ContactServiceImpl implements domain.ContactService
type ContactServiceImpl struct {
	contactRepo domain.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo domain.ContactRepository) domain.ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

// NewCaptcha implements domain.ContactService. The code is stored on the
// session and must be echoed back with the next submission.
func (s *ContactServiceImpl) NewCaptcha(sess *domain.Session) (string, error) {
	code, err := generateCaptchaCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate captcha: %w", err)
	}
	sess.CaptchaCode = code
	return code, nil
}

// Submit implements domain.ContactService. The entered code is compared
// case-insensitively; a used code never validates twice because a fresh one
// replaces it on success.
func (s *ContactServiceImpl) Submit(ctx context.Context, sess *domain.Session, in domain.ContactInput) (*domain.ContactMessage, error) {
	entered := strings.ToUpper(strings.TrimSpace(in.CaptchaInput))
	if sess.CaptchaCode == "" || entered != sess.CaptchaCode {
		return nil, domain.ErrCaptchaMismatch
	}

	if strings.TrimSpace(in.EnquiryType) == "" {
		return nil, domain.NewValidationError("enquiry_type", "enquiry type is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.NewValidationError("description", "description is required")
	}

	message := &domain.ContactMessage{
		EnquiryType:    strings.TrimSpace(in.EnquiryType),
		Segment:        strings.TrimSpace(in.Segment),
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Description:    strings.TrimSpace(in.Description),
		TimeSlot:       strings.TrimSpace(in.TimeSlot),
		CaptchaEntered: entered,
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	// Rotate the code so the same challenge cannot be replayed.
	if _, err := s.NewCaptcha(sess); err != nil {
		return nil, err
	}

	return message, nil
}

// generateCaptchaCode produces a cryptographically random uppercase
// alphanumeric challenge.
func generateCaptchaCode() (string, error) {
	code := make([]byte, captchaLength)
	for i := 0; i < captchaLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(captchaCharset))))
		if err != nil {
			return "", err
		}
		code[i] = captchaCharset[num.Int64()]
	}
	return string(code), nil
}
