package mysql

import (
	"context"
	"errors"
	"testing"

	"sacco-admin/internal/domain/errs"
	loanDomain "sacco-admin/internal/domain/loan"
	"sacco-admin/internal/domain/uow"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	_, gw := openTestDB(t)
	ctx := context.Background()
	memberID := seedMember(t, gw, "77")

	err := gw.Tx.WithinTx(ctx, func(r uow.Repos) error {
		ok, err := r.Members.Exists(ctx, memberID)
		if err != nil || !ok {
			t.Fatalf("Exists inside tx = %v, %v", ok, err)
		}
		return r.Loans.Create(ctx, &loanDomain.Loan{MemberID: memberID, Amount: 10, InterestRate: 1})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	loans, _ := gw.Loans.List(ctx)
	if len(loans) != 1 {
		t.Fatalf("loan not visible after commit: %+v", loans)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	_, gw := openTestDB(t)
	ctx := context.Background()
	memberID := seedMember(t, gw, "78")

	err := gw.Tx.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, &loanDomain.Loan{MemberID: memberID, Amount: 10, InterestRate: 1}); err != nil {
			return err
		}
		return errs.Input("member 0 does not exist", "MemberID")
	})
	if !errors.Is(err, errs.ErrInput) {
		t.Fatalf("expected input error to pass through, got %v", err)
	}

	loans, _ := gw.Loans.List(ctx)
	if len(loans) != 0 {
		t.Fatalf("loan visible after rollback: %+v", loans)
	}
}

func TestGormUoW_WithinTx_ForeignErrorBecomesStorage(t *testing.T) {
	_, gw := openTestDB(t)

	err := gw.Tx.WithinTx(context.Background(), func(r uow.Repos) error {
		return errors.New("boom")
	})
	if !errors.Is(err, errs.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
