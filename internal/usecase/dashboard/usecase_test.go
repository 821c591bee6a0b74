package dashboard

import (
	"context"
	"errors"
	"testing"

	"sacco-admin/internal/domain/errs"
)

type fakeSource struct {
	members          int64
	loanCount        int64
	loanTotal        float64
	balance          float64
	disbursed        float64
	collected        float64
	failLoanSummary  error
	collectedQueried bool
}

func (f *fakeSource) CountMembers(ctx context.Context) (int64, error) { return f.members, nil }
func (f *fakeSource) LoanSummary(ctx context.Context) (int64, float64, error) {
	return f.loanCount, f.loanTotal, f.failLoanSummary
}
func (f *fakeSource) TotalMemberBalance(ctx context.Context) (float64, error)   { return f.balance, nil }
func (f *fakeSource) TotalDisbursedAmount(ctx context.Context) (float64, error) { return f.disbursed, nil }
func (f *fakeSource) TotalCollectedAmount(ctx context.Context) (float64, error) {
	f.collectedQueried = true
	return f.collected, nil
}

func TestSummary_Figures(t *testing.T) {
	src := &fakeSource{members: 4, loanCount: 2, loanTotal: 1500, balance: 320.5, disbursed: 500, collected: 125}
	got, err := NewUsecase(src).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := Summary{TotalClients: 4, TotalLoans: 2, TotalLoanAmount: 1500, TotalSavings: 320.5, CashInCirculation: 500, Collected: 125}
	if *got != want {
		t.Fatalf("summary = %+v, want %+v", *got, want)
	}
	if !src.collectedQueried {
		t.Fatalf("collected must come from its own query")
	}
}

func TestSummary_StopsOnError(t *testing.T) {
	src := &fakeSource{failLoanSummary: errs.Storage(errors.New("lost connection"))}
	_, err := NewUsecase(src).Summary(context.Background())
	if !errors.Is(err, errs.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
	if src.collectedQueried {
		t.Fatalf("later queries must not run after a failure")
	}
}
