package membermock

import (
	"context"

	domain "sacco-admin/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, m *domain.Member) error
	ListFn         func(ctx context.Context) ([]domain.Member, error)
	CountFn        func(ctx context.Context) (int64, error)
	ExistsFn       func(ctx context.Context, id uint64) (bool, error)
	TotalBalanceFn func(ctx context.Context) (float64, error)
}

func (r *Repo) Create(ctx context.Context, m *domain.Member) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, m)
	}
	return nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Member, error) {
	if r.ListFn != nil {
		return r.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	if r.CountFn != nil {
		return r.CountFn(ctx)
	}
	return 0, context.Canceled
}

func (r *Repo) Exists(ctx context.Context, id uint64) (bool, error) {
	if r.ExistsFn != nil {
		return r.ExistsFn(ctx, id)
	}
	return false, context.Canceled
}

func (r *Repo) TotalBalance(ctx context.Context) (float64, error) {
	if r.TotalBalanceFn != nil {
		return r.TotalBalanceFn(ctx)
	}
	return 0, context.Canceled
}
