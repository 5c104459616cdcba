// Package dbtest opens a migrated in-memory SQLite database for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank_portal_echo/internal/services"
)

// New returns a fresh database private to t. A single pooled connection keeps
// every query on the same in-memory database.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	log := zap.NewNop()

	db, err := services.Open(sqlite.Open(":memory:"), log)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := services.AutoMigrate(db, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
