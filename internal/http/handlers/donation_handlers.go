package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/http/middleware"
)

// DonationHandlers handles donation and hosted checkout HTTP requests
type DonationHandlers struct {
	donationSvc domain.DonationService
	sessions    *middleware.SessionMW
}

// NewDonationHandlers creates new donation handlers
func NewDonationHandlers(donationSvc domain.DonationService, sessions *middleware.SessionMW) *DonationHandlers {
	return &DonationHandlers{
		donationSvc: donationSvc,
		sessions:    sessions,
	}
}

// Amount accepts both JSON numbers and numeric strings so older clients
// keep working, with an explicit coercion error instead of a decode panic.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("amount must be a number")
	}
	*a = Amount(f)
	return nil
}

// DonateRequest represents a direct donation submission
type DonateRequest struct {
	DonorName        string `json:"donor_name"`
	DonorEmail       string `json:"donor_email"`
	Amount           Amount `json:"amount"`
	Currency         string `json:"currency"`
	Purpose          string `json:"purpose"`
	PayVia           string `json:"pay_via"`
	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference"`
}

func (r *DonateRequest) toInput() domain.DonationInput {
	return domain.DonationInput{
		DonorName:        r.DonorName,
		DonorEmail:       r.DonorEmail,
		Amount:           float64(r.Amount),
		Currency:         r.Currency,
		Purpose:          r.Purpose,
		PayVia:           r.PayVia,
		PaymentMethod:    r.PaymentMethod,
		PaymentReference: r.PaymentReference,
	}
}

// Donate handles POST /api/donate
func (h *DonationHandlers) Donate(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationSvc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == domain.ErrDuplicateReference:
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment reference already recorded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"donation_id": donation.ID,
		"status":      string(donation.Status),
	})
}

// GetDonations handles GET /api/get-donations
func (h *DonationHandlers) GetDonations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}

	donations, err := h.donationSvc.List(c.Request.Context(), domain.DonationFilter{
		Status:   c.Query("status"),
		Provider: c.Query("provider"),
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donations"})
		return
	}

	out := make([]gin.H, 0, len(donations))
	for _, d := range donations {
		out = append(out, gin.H{
			"id":                d.ID,
			"donor_name":        d.DonorName,
			"donor_email":       d.DonorEmail,
			"amount":            d.Amount,
			"currency":          d.Currency,
			"purpose":           d.Purpose,
			"payment_provider":  d.PaymentProvider,
			"payment_method":    d.PaymentMethod,
			"payment_reference": d.PaymentReference,
			"status":            string(d.Status),
			"created_at":        d.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"donations": out, "count": len(out)})
}

// CreateCheckoutSession handles POST /create-checkout-session
func (h *DonationHandlers) CreateCheckoutSession(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.Session(c)
	checkout, err := h.donationSvc.CreateCheckout(c.Request.Context(), sess, req.toInput())
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == domain.ErrProviderNotConfigured:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment provider not configured"})
		case errors.Is(err, domain.ErrProviderUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		}
		return
	}

	if err := h.sessions.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": checkout.ID, "url": checkout.URL})
}

// Success handles GET /success?session_id=... after the provider redirect.
func (h *DonationHandlers) Success(c *gin.Context) {
	sess := middleware.Session(c)

	donation, err := h.donationSvc.FinalizeSuccess(c.Request.Context(), sess, c.Query("session_id"))
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err == domain.ErrProviderNotConfigured:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment provider not configured"})
		case errors.Is(err, domain.ErrProviderUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		case err == domain.ErrDuplicateReference:
			// Refresh of the success page after the donation was recorded.
			c.JSON(http.StatusOK, gin.H{"message": "Donation already recorded. Thank you!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize donation"})
		}
		return
	}

	if err := h.sessions.Save(c); err != nil {
		log.Printf("checkout success: failed to save session: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Thank you, %s! Your donation was received.", donation.DonorName),
		"donation_id": donation.ID,
		"amount":      donation.Amount,
		"currency":    donation.Currency,
		"status":      string(donation.Status),
	})
}

// Cancel handles GET /cancel. A pending draft is recorded as a cancelled
// donation; without a draft nothing is inserted.
func (h *DonationHandlers) Cancel(c *gin.Context) {
	sess := middleware.Session(c)

	if _, err := h.donationSvc.FinalizeCancel(c.Request.Context(), sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cancellation"})
		return
	}

	sess.Flash = "Checkout cancelled. No payment was taken."
	if err := h.sessions.Save(c); err != nil {
		log.Printf("checkout cancel: failed to save session: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}
