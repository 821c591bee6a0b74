package mysql

import (
	"context"

	loanDomain "sacco-admin/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Create always stores the loan as Pending.
func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	l.Status = loanDomain.StatusPending
	return translate(r.db, r.db.WithContext(ctx).Create(l).Error, "loan")
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	out := []loanDomain.Loan{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, translate(r.db, err, "")
	}
	return out, nil
}

func (r *LoanRepository) Summary(ctx context.Context) (loanDomain.Summary, error) {
	var out loanDomain.Summary
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Scan(&out).Error
	return out, translate(r.db, err, "")
}

func (r *LoanRepository) SumByStatus(ctx context.Context, status loanDomain.Status) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, translate(r.db, err, "")
}
