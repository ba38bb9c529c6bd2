package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthenticated    = errors.New("login required")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Report errors
var (
	ErrReportNotFound   = errors.New("report not found")
	ErrReportFinalized  = errors.New("report status already finalized")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// Donation and checkout errors
var (
	ErrDonationNotFound      = errors.New("donation not found")
	ErrDuplicateReference    = errors.New("payment reference already recorded")
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	ErrProviderUnavailable   = errors.New("payment provider request failed")
)

// Contact errors
var (
	ErrCaptchaMismatch = errors.New("captcha code does not match")
)

// Authorization errors
var (
	ErrForbidden = errors.New("access denied")
)
