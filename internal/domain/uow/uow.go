package uow

import (
	"context"

	"sacco-admin/internal/domain/loan"
	"sacco-admin/internal/domain/member"
)

type Repos struct {
	Members member.Repository
	Loans   loan.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
