package mysql

import (
	"context"
	"errors"

	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// WithinTx binds both repositories to one transaction. Errors already in
// the application taxonomy pass through; anything else from begin/commit
// becomes a storage error.
func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Members: &MemberRepository{db: tx},
			Loans:   &LoanRepository{db: tx},
		})
	})
	if err == nil || errors.Is(err, errs.ErrInput) || errors.Is(err, errs.ErrDuplicateKey) || errors.Is(err, errs.ErrStorage) {
		return err
	}
	return errs.Storage(err)
}
