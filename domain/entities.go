package domain

import "time"

// ReportStatus tracks the review state of a disaster report.
// Status only advances: pending -> verified or pending -> rejected.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
	ReportRejected ReportStatus = "rejected"
)

// DonationStatus tracks the payment state of a donation.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationSucceeded DonationStatus = "succeeded"
	DonationFailed    DonationStatus = "failed"
	DonationCancelled DonationStatus = "cancelled"
	DonationRefunded  DonationStatus = "refunded"
)

// User represents a registered platform user
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Language     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Report represents a submitted disaster report
type Report struct {
	ID           uint
	UserID       uint
	Name         string
	Email        string
	Location     string
	DisasterType string
	Description  string
	ImagePath    string
	Status       ReportStatus
	CreatedAt    time.Time
}

// Donation represents a single donation record, direct or via hosted checkout
type Donation struct {
	ID               uint
	DonorName        string
	DonorEmail       string
	Amount           float64
	Currency         string
	Purpose          string
	PaymentProvider  string
	PaymentMethod    string
	PaymentReference string
	Status           DonationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ContactMessage represents a captcha-verified contact form submission
type ContactMessage struct {
	ID             uint
	EnquiryType    string
	Segment        string
	Name           string
	Email          string
	Phone          string
	Description    string
	TimeSlot       string
	CaptchaEntered string
	CreatedAt      time.Time
}

// Volunteer represents a registered volunteer
type Volunteer struct {
	ID        uint
	Name      string
	Contact   string
	Skills    string
	Location  string
	Available bool
	CreatedAt time.Time
}

// CheckoutDraft holds donation details between hosted checkout creation and
// finalization (success or cancel). It lives only in the session store.
type CheckoutDraft struct {
	DonorName         string    `json:"donor_name"`
	DonorEmail        string    `json:"donor_email"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Purpose           string    `json:"purpose"`
	PayVia            string    `json:"pay_via"`
	ProviderSessionID string    `json:"provider_session_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// Session is the per-request state keyed by the opaque token carried in the
// session cookie: logged-in user, UI language, pending checkout draft and
// the captcha code awaiting re-entry.
type Session struct {
	ID          string         `json:"id"`
	UserID      uint           `json:"user_id"`
	UserName    string         `json:"user_name"`
	Language    string         `json:"language"`
	CaptchaCode string         `json:"captcha_code"`
	Flash       string         `json:"flash"`
	Draft       *CheckoutDraft `json:"draft,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	ExpiresAt   time.Time      `json:"expires_at"`
}

// LoggedIn reports whether the session is bound to a user.
func (s *Session) LoggedIn() bool { return s != nil && s.UserID != 0 }

// CheckoutSession is the provider-side view of a hosted checkout.
type CheckoutSession struct {
	ID            string
	URL           string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// TokenClaims represents JWT token claims for the admin API
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
