package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/unnati04102007/ResQNet/domain"
)

// setupTestDB opens an in-memory database with the repository tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBReport{}, &DBDonation{}, &DBContactMessage{}, &DBVolunteer{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// createTestUser inserts a user row for report foreign keys.
func createTestUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	repo := NewUserRepository(db)
	user := &domain.User{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PasswordHash: "hashed",
		Language:     "en",
		Role:         "user",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// backdate pins a row's created_at so ordering assertions are deterministic.
func backdate(t *testing.T, db *gorm.DB, model interface{}, id uint, at time.Time) {
	t.Helper()

	if err := db.Model(model).Where("id = ?", id).Update("created_at", at).Error; err != nil {
		t.Fatalf("failed to backdate row %d: %v", id, err)
	}
}
