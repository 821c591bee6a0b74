package loanmock

import (
	"context"

	domain "sacco-admin/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return context.Canceled; unset writes are no-ops.
type Repo struct {
	CreateFn      func(ctx context.Context, l *domain.Loan) error
	ListFn        func(ctx context.Context) ([]domain.Loan, error)
	SummaryFn     func(ctx context.Context) (domain.Summary, error)
	SumByStatusFn func(ctx context.Context, status domain.Status) (float64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Summary(ctx context.Context) (domain.Summary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx)
	}
	return domain.Summary{}, context.Canceled
}

func (m *Repo) SumByStatus(ctx context.Context, status domain.Status) (float64, error) {
	if m.SumByStatusFn != nil {
		return m.SumByStatusFn(ctx, status)
	}
	return 0, context.Canceled
}
