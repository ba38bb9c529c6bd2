package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/unnati04102007/ResQNet/domain"
)

const (
	defaultCurrency  = "USD"
	minDonationLimit = 1
	maxDonationLimit = 200
)

// DonationServiceImpl implements domain.DonationService
type DonationServiceImpl struct {
	donationRepo domain.DonationRepository
	provider     domain.CheckoutProvider
}

// NewDonationService creates a new donation service
func NewDonationService(donationRepo domain.DonationRepository, provider domain.CheckoutProvider) domain.DonationService {
	return &DonationServiceImpl{
		donationRepo: donationRepo,
		provider:     provider,
	}
}

// Create implements domain.DonationService. Amounts are rounded to two
// decimal places; a supplied payment reference marks the donation succeeded,
// otherwise it starts pending.
func (s *DonationServiceImpl) Create(ctx context.Context, in domain.DonationInput) (*domain.Donation, error) {
	amount, currency, err := normalizeAmount(in.Amount, in.Currency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.DonorName) == "" {
		return nil, domain.NewValidationError("donor_name", "donor_name is required")
	}
	if strings.TrimSpace(in.DonorEmail) == "" {
		return nil, domain.NewValidationError("donor_email", "donor_email is required")
	}

	status := domain.DonationPending
	if in.PaymentReference != "" {
		status = domain.DonationSucceeded
	}

	donation := &domain.Donation{
		DonorName:        strings.TrimSpace(in.DonorName),
		DonorEmail:       strings.TrimSpace(in.DonorEmail),
		Amount:           amount,
		Currency:         currency,
		Purpose:          in.Purpose,
		PaymentProvider:  in.PayVia,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		Status:           status,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// CreateCheckout implements domain.DonationService. The draft is parked on
// the session until /success or /cancel finalizes it.
func (s *DonationServiceImpl) CreateCheckout(ctx context.Context, sess *domain.Session, in domain.DonationInput) (*domain.CheckoutSession, error) {
	if !s.provider.Configured() {
		return nil, domain.ErrProviderNotConfigured
	}

	amount, currency, err := normalizeAmount(in.Amount, in.Currency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.DonorName) == "" {
		return nil, domain.NewValidationError("donor_name", "donor_name is required")
	}
	if strings.TrimSpace(in.DonorEmail) == "" {
		return nil, domain.NewValidationError("donor_email", "donor_email is required")
	}

	draft := &domain.CheckoutDraft{
		DonorName:  strings.TrimSpace(in.DonorName),
		DonorEmail: strings.TrimSpace(in.DonorEmail),
		Amount:     amount,
		Currency:   currency,
		Purpose:    in.Purpose,
		PayVia:     in.PayVia,
		CreatedAt:  time.Now().UTC(),
	}

	// Providers charge in the currency's smallest unit.
	unitAmount := int64(math.Round(amount * 100))

	checkout, err := s.provider.CreateSession(ctx, draft, unitAmount)
	if err != nil {
		return nil, err
	}

	draft.ProviderSessionID = checkout.ID
	sess.Draft = draft

	return checkout, nil
}

// FinalizeSuccess implements domain.DonationService
func (s *DonationServiceImpl) FinalizeSuccess(ctx context.Context, sess *domain.Session, checkoutID string) (*domain.Donation, error) {
	if checkoutID == "" {
		return nil, domain.NewValidationError("session_id", "session_id is required")
	}
	if !s.provider.Configured() {
		return nil, domain.ErrProviderNotConfigured
	}

	checkout, err := s.provider.RetrieveSession(ctx, checkoutID)
	if err != nil {
		return nil, err
	}

	donation := donationFromCheckout(checkout, sess.Draft)
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	sess.Draft = nil
	return donation, nil
}

// FinalizeCancel implements domain.DonationService
func (s *DonationServiceImpl) FinalizeCancel(ctx context.Context, sess *domain.Session) (*domain.Donation, error) {
	draft := sess.Draft
	sess.Draft = nil
	if draft == nil {
		return nil, nil
	}

	donation := &domain.Donation{
		DonorName:        draft.DonorName,
		DonorEmail:       draft.DonorEmail,
		Amount:           draft.Amount,
		Currency:         draft.Currency,
		Purpose:          draft.Purpose,
		PaymentProvider:  draft.PayVia,
		PaymentReference: draft.ProviderSessionID,
		Status:           domain.DonationCancelled,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// List implements domain.DonationService. Limits are clamped to 1..200; the
// default of 50 for an absent limit parameter is applied at the HTTP layer.
func (s *DonationServiceImpl) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	if filter.Limit < minDonationLimit {
		filter.Limit = minDonationLimit
	}
	if filter.Limit > maxDonationLimit {
		filter.Limit = maxDonationLimit
	}
	return s.donationRepo.List(ctx, filter)
}

// donationFromCheckout builds the succeeded donation row from the remote
// checkout session, falling back to the local draft for fields the provider
// did not echo back.
func donationFromCheckout(checkout *domain.CheckoutSession, draft *domain.CheckoutDraft) *domain.Donation {
	donation := &domain.Donation{
		DonorName:        checkout.Metadata["donor_name"],
		DonorEmail:       checkout.Metadata["donor_email"],
		Amount:           math.Round(float64(checkout.AmountTotal)) / 100,
		Currency:         strings.ToUpper(checkout.Currency),
		Purpose:          checkout.Metadata["purpose"],
		PaymentProvider:  checkout.Metadata["pay_via"],
		PaymentReference: checkout.ID,
		Status:           domain.DonationSucceeded,
	}
	if donation.DonorEmail == "" {
		donation.DonorEmail = checkout.CustomerEmail
	}

	if draft != nil && draft.ProviderSessionID == checkout.ID {
		if donation.DonorName == "" {
			donation.DonorName = draft.DonorName
		}
		if donation.DonorEmail == "" {
			donation.DonorEmail = draft.DonorEmail
		}
		if donation.Purpose == "" {
			donation.Purpose = draft.Purpose
		}
		if donation.PaymentProvider == "" {
			donation.PaymentProvider = draft.PayVia
		}
		if donation.Amount == 0 {
			donation.Amount = draft.Amount
		}
		if donation.Currency == "" {
			donation.Currency = draft.Currency
		}
	}

	return donation
}

// normalizeAmount rounds to two decimal places and uppercases the currency,
// defaulting to USD.
func normalizeAmount(amount float64, currency string) (float64, string, error) {
	rounded := math.Round(amount*100) / 100
	if rounded <= 0 {
		return 0, "", domain.NewValidationError("amount", "amount must be greater than 0")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	return rounded, currency, nil
}
