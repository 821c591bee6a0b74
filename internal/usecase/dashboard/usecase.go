package dashboard

import (
	"context"
)

// Source is the read side of the persistence gateway the dashboard needs.
type Source interface {
	CountMembers(ctx context.Context) (int64, error)
	LoanSummary(ctx context.Context) (count int64, total float64, err error)
	TotalMemberBalance(ctx context.Context) (float64, error)
	TotalDisbursedAmount(ctx context.Context) (float64, error)
	TotalCollectedAmount(ctx context.Context) (float64, error)
}

// Summary holds the dashboard's aggregate figures.
type Summary struct {
	TotalClients      int64   `json:"total_clients"`
	TotalLoans        int64   `json:"total_loans"`
	TotalLoanAmount   float64 `json:"total_loan_amount"`
	TotalSavings      float64 `json:"total_savings"`
	CashInCirculation float64 `json:"cash_in_circulation"`
	Collected         float64 `json:"collected"`
}

type Usecase struct{ src Source }

func NewUsecase(src Source) *Usecase { return &Usecase{src: src} }

// Summary runs each aggregate query in turn and stops at the first failure.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.TotalClients, err = u.src.CountMembers(ctx); err != nil {
		return nil, err
	}
	if s.TotalLoans, s.TotalLoanAmount, err = u.src.LoanSummary(ctx); err != nil {
		return nil, err
	}
	if s.TotalSavings, err = u.src.TotalMemberBalance(ctx); err != nil {
		return nil, err
	}
	if s.CashInCirculation, err = u.src.TotalDisbursedAmount(ctx); err != nil {
		return nil, err
	}
	if s.Collected, err = u.src.TotalCollectedAmount(ctx); err != nil {
		return nil, err
	}
	return &s, nil
}
