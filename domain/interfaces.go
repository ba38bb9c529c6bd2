package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateLanguage(ctx context.Context, userID uint, language string) error
}

// ReportFilter narrows a report listing.
type ReportFilter struct {
	DisasterType string // exact match
	Location     string // case-insensitive substring
	Limit        int
}

// ReportRepository defines disaster report data access operations
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	FindByID(ctx context.Context, id uint) (*Report, error)
	List(ctx context.Context, filter ReportFilter) ([]Report, error)
	UpdateStatus(ctx context.Context, id uint, status ReportStatus) error
}

// DonationFilter narrows a donation listing.
type DonationFilter struct {
	Status   string
	Provider string
	Limit    int
}

// DonationRepository defines donation data access operations
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context, filter DonationFilter) ([]Donation, error)
}

// ContactRepository defines contact message data access operations
type ContactRepository interface {
	Create(ctx context.Context, message *ContactMessage) error
}

// VolunteerRepository defines volunteer data access operations
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *Volunteer) error
	List(ctx context.Context, onlyAvailable bool, limit int) ([]Volunteer, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password, confirm string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	SetLanguage(ctx context.Context, userID uint, language string) error
}

// ReportInput carries a report submission.
type ReportInput struct {
	Name         string
	Email        string
	Location     string
	DisasterType string
	Description  string
}

// ImageUpload carries an optional report image.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// ReportService defines incident reporting business logic
type ReportService interface {
	Submit(ctx context.Context, userID uint, in ReportInput, image *ImageUpload) (*Report, error)
	List(ctx context.Context, disasterType, location string) ([]Report, error)
	UpdateStatus(ctx context.Context, id uint, status ReportStatus) (*Report, error)
}

// DonationInput carries a donation submission.
type DonationInput struct {
	DonorName        string
	DonorEmail       string
	Amount           float64
	Currency         string
	Purpose          string
	PayVia           string
	PaymentMethod    string
	PaymentReference string
}

// DonationService defines donation business logic
type DonationService interface {
	Create(ctx context.Context, in DonationInput) (*Donation, error)
	CreateCheckout(ctx context.Context, sess *Session, in DonationInput) (*CheckoutSession, error)
	FinalizeSuccess(ctx context.Context, sess *Session, checkoutID string) (*Donation, error)
	// FinalizeCancel records a cancelled donation from the pending draft.
	// Returns nil without inserting when no draft is held in the session.
	FinalizeCancel(ctx context.Context, sess *Session) (*Donation, error)
	List(ctx context.Context, filter DonationFilter) ([]Donation, error)
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	EnquiryType  string
	Segment      string
	Name         string
	Email        string
	Phone        string
	Description  string
	TimeSlot     string
	CaptchaInput string
}

// ContactService defines contact form and captcha business logic
type ContactService interface {
	// NewCaptcha issues a fresh challenge code and stores it on the session.
	NewCaptcha(sess *Session) (string, error)
	Submit(ctx context.Context, sess *Session, in ContactInput) (*ContactMessage, error)
}

// VolunteerService defines volunteer registry business logic
type VolunteerService interface {
	Register(ctx context.Context, name, contact, skills, location string) (*Volunteer, error)
	List(ctx context.Context, onlyAvailable bool, limit int) ([]Volunteer, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations for the admin API
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// CheckoutProvider wraps the hosted checkout payment provider.
type CheckoutProvider interface {
	Configured() bool
	// CreateSession opens a hosted checkout for unitAmount in the currency's
	// smallest unit and returns the provider session id and redirect URL.
	CreateSession(ctx context.Context, draft *CheckoutDraft, unitAmount int64) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, id string) (*CheckoutSession, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// ImageStore persists uploaded report images.
type ImageStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the service needs.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
