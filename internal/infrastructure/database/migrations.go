package database

import (
	"fmt"
	"time"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/unnati04102007/ResQNet/internal/infrastructure/repositories"
)

// SchemaMigration records an applied migration version.
type SchemaMigration struct {
	Version   string `gorm:"primaryKey;size:64"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "schema_migrations" }

// Migration is one step in the ordered migration list.
type Migration struct {
	Version string
	Apply   func(db *gorm.DB) error
}

// migrations is the canonical schema history. New schema changes append a
// new version; already-applied versions are skipped at startup.
var migrations = []Migration{
	{
		Version: "0001_core_tables",
		Apply: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&repositories.DBUser{},
				&repositories.DBReport{},
				&repositories.DBDonation{},
				&repositories.DBContactMessage{},
				&repositories.DBVolunteer{},
			)
		},
	},
	{
		Version: "0002_casbin_rules",
		Apply: func(db *gorm.DB) error {
			// The adapter creates the casbin_rule table on first use.
			_, err := gormadapter.NewAdapterByDB(db)
			return err
		},
	},
}

// Migrate applies all unapplied migrations in order, recording each in
// schema_migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("version = ?", m.Version).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}
		if err := m.Apply(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Version, err)
		}
		record := &SchemaMigration{Version: m.Version, AppliedAt: time.Now().UTC()}
		if err := db.Create(record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
		}
	}

	return nil
}
