package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unnati04102007/ResQNet/domain"
	"github.com/unnati04102007/ResQNet/internal/mocks"
	"github.com/unnati04102007/ResQNet/internal/services"
)

func newDonationRouter(donationRepo *mocks.MockDonationRepository, provider *mocks.MockCheckoutProvider) (*gin.Engine, map[string]*domain.Session) {
	sessRepo, store := newMemorySessionRepo()
	sessmw := newTestSessionMW(sessRepo)
	dh := NewDonationHandlers(services.NewDonationService(donationRepo, provider), sessmw)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/donate", dh.Donate)
	api.GET("/get-donations", dh.GetDonations)

	web := r.Group("/").Use(sessmw.WithSession())
	web.POST("/create-checkout-session", dh.CreateCheckoutSession)
	web.GET("/success", dh.Success)
	web.GET("/cancel", dh.Cancel)

	return r, store
}

func TestDonationHandlers_Donate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "numeric amount recorded pending",
			body:           `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":25.005}`,
			expectedCode:   http.StatusCreated,
			expectedStatus: "pending",
		},
		{
			name:           "string amount coerced",
			body:           `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":"19.99"}`,
			expectedCode:   http.StatusCreated,
			expectedStatus: "pending",
		},
		{
			name:           "reference marks succeeded",
			body:           `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":10,"payment_reference":"txn_1"}`,
			expectedCode:   http.StatusCreated,
			expectedStatus: "succeeded",
		},
		{
			name:         "non-numeric amount rejected",
			body:         `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":"lots"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "zero amount rejected",
			body:         `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":0}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing donor rejected",
			body:         `{"donor_email":"ravi@example.com","amount":10}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newDonationRouter(mocks.NewMockDonationRepository(), mocks.NewMockCheckoutProvider())

			req := httptest.NewRequest(http.MethodPost, "/api/donate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := doRequest(r, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedCode, w.Code, w.Body.String())
			}
			if tt.expectedCode != http.StatusCreated {
				return
			}

			var resp struct {
				Success    bool   `json:"success"`
				DonationID uint   `json:"donation_id"`
				Status     string `json:"status"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if !resp.Success || resp.DonationID == 0 {
				t.Errorf("unexpected response: %+v", resp)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestDonationHandlers_Donate_DuplicateReference(t *testing.T) {
	repo := mocks.NewMockDonationRepository()
	repo.CreateFunc = func(ctx context.Context, donation *domain.Donation) error {
		return domain.ErrDuplicateReference
	}
	r, _ := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

	body := `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":10,"payment_reference":"txn_dup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/donate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := doRequest(r, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDonationHandlers_GetDonations(t *testing.T) {
	repo := mocks.NewMockDonationRepository()
	repo.ListFunc = func(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
		if filter.Limit != 50 {
			t.Errorf("expected default limit 50, got %d", filter.Limit)
		}
		return []domain.Donation{
			{
				ID:               1,
				DonorName:        "Ravi",
				DonorEmail:       "ravi@example.com",
				Amount:           19.99,
				Currency:         "USD",
				PaymentProvider:  "stripe",
				PaymentReference: "cs_1",
				Status:           domain.DonationSucceeded,
				CreatedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		}, nil
	}
	r, _ := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

	req := httptest.NewRequest(http.MethodGet, "/api/get-donations", nil)
	w := doRequest(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Donations []map[string]interface{} `json:"donations"`
		Count     int                      `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Count != 1 || len(resp.Donations) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	d := resp.Donations[0]
	if d["amount"].(float64) != 19.99 {
		t.Errorf("expected amount 19.99, got %v", d["amount"])
	}
	if d["created_at"] != "2026-03-01T12:00:00Z" {
		t.Errorf("expected RFC3339 UTC created_at, got %v", d["created_at"])
	}
	if d["status"] != "succeeded" {
		t.Errorf("expected succeeded, got %v", d["status"])
	}
}

func TestDonationHandlers_GetDonations_LimitParam(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"absent uses default", "", 50},
		{"explicit zero clamped to minimum", "?limit=0", 1},
		{"negative clamped to minimum", "?limit=-3", 1},
		{"above cap clamped", "?limit=500", 200},
		{"non-numeric falls back to default", "?limit=lots", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDonationRepository()
			var gotLimit int
			repo.ListFunc = func(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
				gotLimit = filter.Limit
				return nil, nil
			}
			r, _ := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

			req := httptest.NewRequest(http.MethodGet, "/api/get-donations"+tt.query, nil)
			w := doRequest(r, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if gotLimit != tt.expected {
				t.Errorf("expected limit %d, got %d", tt.expected, gotLimit)
			}
		})
	}
}

func TestDonationHandlers_CreateCheckoutSession(t *testing.T) {
	t.Run("returns provider session and parks draft", func(t *testing.T) {
		provider := mocks.NewMockCheckoutProvider()
		provider.CreateSessionFunc = func(ctx context.Context, draft *domain.CheckoutDraft, unitAmount int64) (*domain.CheckoutSession, error) {
			return &domain.CheckoutSession{ID: "cs_9", URL: "https://pay.example.com/cs_9"}, nil
		}
		r, store := newDonationRouter(mocks.NewMockDonationRepository(), provider)

		body := `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":"19.99"}`
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := doRequest(r, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ID != "cs_9" || resp.URL == "" {
			t.Errorf("unexpected response: %+v", resp)
		}

		// The draft must have been persisted with the session.
		var saved *domain.Session
		for _, sess := range store {
			saved = sess
		}
		if saved == nil || saved.Draft == nil {
			t.Fatal("expected draft stored on session")
		}
		if saved.Draft.ProviderSessionID != "cs_9" {
			t.Errorf("expected draft bound to cs_9, got %s", saved.Draft.ProviderSessionID)
		}
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		provider := mocks.NewMockCheckoutProvider()
		provider.ConfiguredFunc = func() bool { return false }
		r, _ := newDonationRouter(mocks.NewMockDonationRepository(), provider)

		body := `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":10}`
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := doRequest(r, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("provider outage maps to bad gateway", func(t *testing.T) {
		provider := mocks.NewMockCheckoutProvider()
		provider.CreateSessionFunc = func(ctx context.Context, draft *domain.CheckoutDraft, unitAmount int64) (*domain.CheckoutSession, error) {
			return nil, domain.ErrProviderUnavailable
		}
		r, _ := newDonationRouter(mocks.NewMockDonationRepository(), provider)

		body := `{"donor_name":"Ravi","donor_email":"ravi@example.com","amount":10}`
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := doRequest(r, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestDonationHandlers_Success(t *testing.T) {
	provider := mocks.NewMockCheckoutProvider()
	provider.RetrieveSessionFunc = func(ctx context.Context, id string) (*domain.CheckoutSession, error) {
		return &domain.CheckoutSession{
			ID:          id,
			AmountTotal: 1999,
			Currency:    "usd",
			Metadata:    map[string]string{"donor_name": "Ravi", "donor_email": "ravi@example.com"},
		}, nil
	}
	r, _ := newDonationRouter(mocks.NewMockDonationRepository(), provider)

	req := httptest.NewRequest(http.MethodGet, "/success?session_id=cs_9", nil)
	w := doRequest(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		DonationID uint    `json:"donation_id"`
		Amount     float64 `json:"amount"`
		Currency   string  `json:"currency"`
		Status     string  `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Amount != 19.99 || resp.Currency != "USD" || resp.Status != "succeeded" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDonationHandlers_Success_MissingSessionID(t *testing.T) {
	r, _ := newDonationRouter(mocks.NewMockDonationRepository(), mocks.NewMockCheckoutProvider())

	req := httptest.NewRequest(http.MethodGet, "/success", nil)
	w := doRequest(r, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDonationHandlers_Success_AlreadyRecorded(t *testing.T) {
	repo := mocks.NewMockDonationRepository()
	repo.CreateFunc = func(ctx context.Context, donation *domain.Donation) error {
		return domain.ErrDuplicateReference
	}
	r, _ := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

	req := httptest.NewRequest(http.MethodGet, "/success?session_id=cs_9", nil)
	w := doRequest(r, req)

	// A refresh of the success page is not an error.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "already recorded") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestDonationHandlers_Cancel(t *testing.T) {
	t.Run("no draft redirects without insert", func(t *testing.T) {
		repo := mocks.NewMockDonationRepository()
		inserted := false
		repo.CreateFunc = func(ctx context.Context, donation *domain.Donation) error {
			inserted = true
			return nil
		}
		r, _ := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

		req := httptest.NewRequest(http.MethodGet, "/cancel", nil)
		w := doRequest(r, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if w.Header().Get("Location") != "/" {
			t.Errorf("expected redirect to /, got %s", w.Header().Get("Location"))
		}
		if inserted {
			t.Error("expected no insert without a draft")
		}
	})

	t.Run("pending draft recorded as cancelled", func(t *testing.T) {
		repo := mocks.NewMockDonationRepository()
		var created *domain.Donation
		repo.CreateFunc = func(ctx context.Context, donation *domain.Donation) error {
			donation.ID = 3
			created = donation
			return nil
		}
		r, store := newDonationRouter(repo, mocks.NewMockCheckoutProvider())

		sess := &domain.Session{ID: "sess-1", Draft: &domain.CheckoutDraft{
			DonorName:         "Ravi",
			DonorEmail:        "ravi@example.com",
			Amount:            19.99,
			Currency:          "USD",
			ProviderSessionID: "cs_9",
		}}
		cookie := seedSession(store, sess)

		req := httptest.NewRequest(http.MethodGet, "/cancel", nil)
		req.AddCookie(cookie)
		w := doRequest(r, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if created == nil || created.Status != domain.DonationCancelled {
			t.Fatalf("expected cancelled donation, got %+v", created)
		}
		if sess.Draft != nil {
			t.Error("expected draft cleared")
		}
		if sess.Flash == "" {
			t.Error("expected cancellation flash message")
		}
	})
}
