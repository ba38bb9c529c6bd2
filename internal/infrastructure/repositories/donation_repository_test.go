package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unnati04102007/ResQNet/domain"
)

func TestDonationRepositoryImpl_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	donation := &domain.Donation{
		DonorName:        "Ravi",
		DonorEmail:       "ravi@example.com",
		Amount:           19.99,
		Currency:         "USD",
		Purpose:          "flood relief",
		PaymentProvider:  "stripe",
		PaymentReference: "cs_1",
		Status:           domain.DonationSucceeded,
	}
	if err := repo.Create(ctx, donation); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if donation.ID == 0 {
		t.Fatal("expected assigned id")
	}

	donations, err := repo.List(ctx, domain.DonationFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(donations) != 1 {
		t.Fatalf("expected 1 donation, got %d", len(donations))
	}
	got := donations[0]
	if got.Amount != 19.99 {
		t.Errorf("expected amount 19.99, got %v", got.Amount)
	}
	if got.PaymentReference != "cs_1" {
		t.Errorf("expected reference cs_1, got %q", got.PaymentReference)
	}
	if got.Status != domain.DonationSucceeded {
		t.Errorf("expected succeeded, got %s", got.Status)
	}
}

func TestDonationRepositoryImpl_DuplicateReference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	first := &domain.Donation{
		DonorName:        "Ravi",
		DonorEmail:       "ravi@example.com",
		Amount:           10,
		Currency:         "USD",
		PaymentReference: "cs_dup",
		Status:           domain.DonationSucceeded,
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := &domain.Donation{
		DonorName:        "Meera",
		DonorEmail:       "meera@example.com",
		Amount:           20,
		Currency:         "USD",
		PaymentReference: "cs_dup",
		Status:           domain.DonationSucceeded,
	}
	err := repo.Create(ctx, second)
	if !errors.Is(err, domain.ErrDuplicateReference) {
		t.Fatalf("expected ErrDuplicateReference, got %v", err)
	}
}

func TestDonationRepositoryImpl_EmptyReferencesDoNotCollide(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		donation := &domain.Donation{
			DonorName:  "Ravi",
			DonorEmail: "ravi@example.com",
			Amount:     10,
			Currency:   "USD",
			Status:     domain.DonationPending,
		}
		if err := repo.Create(ctx, donation); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	donations, err := repo.List(ctx, domain.DonationFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(donations) != 3 {
		t.Errorf("expected 3 donations without references, got %d", len(donations))
	}
}

func TestDonationRepositoryImpl_ListFiltersAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []struct {
		reference string
		provider  string
		status    domain.DonationStatus
		offset    time.Duration
	}{
		{"cs_a", "stripe", domain.DonationSucceeded, 0},
		{"cs_b", "stripe", domain.DonationCancelled, time.Hour},
		{"cs_c", "paypal", domain.DonationSucceeded, 2 * time.Hour},
	}
	for _, row := range rows {
		donation := &domain.Donation{
			DonorName:        "Ravi",
			DonorEmail:       "ravi@example.com",
			Amount:           10,
			Currency:         "USD",
			PaymentProvider:  row.provider,
			PaymentReference: row.reference,
			Status:           row.status,
		}
		if err := repo.Create(ctx, donation); err != nil {
			t.Fatalf("create %s failed: %v", row.reference, err)
		}
		backdate(t, db, &DBDonation{}, donation.ID, base.Add(row.offset))
	}

	t.Run("newest first", func(t *testing.T) {
		donations, err := repo.List(ctx, domain.DonationFilter{})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(donations) != 3 {
			t.Fatalf("expected 3 donations, got %d", len(donations))
		}
		if donations[0].PaymentReference != "cs_c" || donations[2].PaymentReference != "cs_a" {
			t.Errorf("unexpected order: %s, %s, %s",
				donations[0].PaymentReference, donations[1].PaymentReference, donations[2].PaymentReference)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		donations, err := repo.List(ctx, domain.DonationFilter{Status: "succeeded"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(donations) != 2 {
			t.Errorf("expected 2 succeeded donations, got %d", len(donations))
		}
	})

	t.Run("provider filter", func(t *testing.T) {
		donations, err := repo.List(ctx, domain.DonationFilter{Provider: "paypal"})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(donations) != 1 || donations[0].PaymentReference != "cs_c" {
			t.Errorf("unexpected paypal donations: %+v", donations)
		}
	})

	t.Run("limit respected", func(t *testing.T) {
		donations, err := repo.List(ctx, domain.DonationFilter{Limit: 2})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(donations) != 2 {
			t.Errorf("expected 2 donations, got %d", len(donations))
		}
	})
}
