package mysql

import (
	"context"
	"testing"

	infradb "sacco-admin/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a private in-memory sqlite database (one connection, so
// every statement sees the same memory db) and ensures the schema.
func openTestDB(t *testing.T) (*gorm.DB, *Gateway) {
	t.Helper()
	db, err := infradb.OpenGormWithDialector(sqlite.Open(":memory:"), logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	gw := NewGateway(db)
	if err := gw.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	t.Cleanup(func() { _ = gw.Close() })
	return db, gw
}
