package repositories

import (
	"context"
	"testing"

	"github.com/unnati04102007/ResQNet/domain"
)

func TestVolunteerRepositoryImpl_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVolunteerRepository(db)
	ctx := context.Background()

	rows := []domain.Volunteer{
		{Name: "Ravi", Contact: "+919800000000", Skills: "first aid", Location: "Chennai", Available: true},
		{Name: "Meera", Contact: "+919800000001", Skills: "logistics", Location: "Mumbai", Available: false},
	}
	for i := range rows {
		if err := repo.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	all, err := repo.List(ctx, false, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 volunteers, got %d", len(all))
	}
	for _, v := range all {
		if v.Name == "Meera" && v.Available {
			t.Error("expected Meera to round-trip as unavailable")
		}
	}

	available, err := repo.List(ctx, true, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(available) != 1 || available[0].Name != "Ravi" {
		t.Errorf("unexpected available volunteers: %+v", available)
	}
}

func TestContactRepositoryImpl_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	message := &domain.ContactMessage{
		EnquiryType:    "general",
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		Description:    "How can I volunteer?",
		CaptchaEntered: "AB3X9QZ",
	}
	if err := repo.Create(ctx, message); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if message.ID == 0 {
		t.Error("expected assigned id")
	}

	var count int64
	if err := db.Model(&DBContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 stored message, got %d", count)
	}
}
