package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/unnati04102007/ResQNet/domain"
)

// StripeServiceImpl implements domain.CheckoutProvider against the Stripe
// hosted checkout API.
type StripeServiceImpl struct {
	api        *client.API
	apiKey     string
	successURL string
	cancelURL  string
}

// NewStripeService creates a new Stripe checkout provider. An empty API key
// leaves the provider unconfigured; checkout attempts then fail with
// domain.ErrProviderNotConfigured at the service layer.
func NewStripeService(apiKey, successURL, cancelURL string) domain.CheckoutProvider {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &StripeServiceImpl{
		api:        api,
		apiKey:     apiKey,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// Configured implements domain.CheckoutProvider
func (s *StripeServiceImpl) Configured() bool {
	return s.apiKey != ""
}

// CreateSession implements domain.CheckoutProvider
func (s *StripeServiceImpl) CreateSession(ctx context.Context, draft *domain.CheckoutDraft, unitAmount int64) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(s.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(s.cancelURL),
		CustomerEmail: stripe.String(draft.DonorEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(draft.Currency)),
					UnitAmount: stripe.Int64(unitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("ResQNet donation"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("donor_name", draft.DonorName)
	params.AddMetadata("donor_email", draft.DonorEmail)
	params.AddMetadata("purpose", draft.Purpose)
	params.AddMetadata("pay_via", draft.PayVia)

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	return checkoutToDomain(sess), nil
}

// RetrieveSession implements domain.CheckoutProvider
func (s *StripeServiceImpl) RetrieveSession(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	return checkoutToDomain(sess), nil
}

func checkoutToDomain(sess *stripe.CheckoutSession) *domain.CheckoutSession {
	out := &domain.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		AmountTotal:   sess.AmountTotal,
		Currency:      strings.ToUpper(string(sess.Currency)),
		CustomerEmail: sess.CustomerEmail,
		Metadata:      sess.Metadata,
	}
	if out.CustomerEmail == "" && sess.CustomerDetails != nil {
		out.CustomerEmail = sess.CustomerDetails.Email
	}
	return out
}
