package mysql

import (
	"context"
	"testing"

	loanDomain "sacco-admin/internal/domain/loan"
	memberDomain "sacco-admin/internal/domain/member"
	staffDomain "sacco-admin/internal/domain/staff"
)

func TestEnsureSchema_CreatesTablesAndIsIdempotent(t *testing.T) {
	db, gw := openTestDB(t)
	ctx := context.Background()

	seedMember(t, gw, "keep-me")

	if err := gw.EnsureSchema(ctx); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
	m := db.Migrator()
	for _, model := range []any{&memberDomain.Member{}, &loanDomain.Loan{}, &staffDomain.Staff{}} {
		if !m.HasTable(model) {
			t.Fatalf("missing table for %T", model)
		}
	}
	if n, _ := gw.CountMembers(ctx); n != 1 {
		t.Fatalf("EnsureSchema must not touch existing rows, count=%d", n)
	}
	if !m.HasIndex(&memberDomain.Member{}, "ux_members_id_number") {
		t.Fatalf("missing unique index on id_number")
	}
}

func TestGateway_Ping(t *testing.T) {
	_, gw := openTestDB(t)
	if err := gw.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
