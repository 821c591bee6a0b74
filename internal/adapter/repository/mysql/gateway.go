package mysql

import (
	"context"

	"sacco-admin/internal/domain/errs"
	loanDomain "sacco-admin/internal/domain/loan"
	memberDomain "sacco-admin/internal/domain/member"
	staffDomain "sacco-admin/internal/domain/staff"

	"gorm.io/gorm"
)

// Gateway owns the process's single database connection and the
// repositories bound to it. Construct it once and pass it by reference.
type Gateway struct {
	db      *gorm.DB
	Members *MemberRepository
	Loans   *LoanRepository
	Tx      *GormUoW
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{
		db:      db,
		Members: NewMemberRepository(db),
		Loans:   NewLoanRepository(db),
		Tx:      NewGormUoW(db),
	}
}

// EnsureSchema creates members, loans and staff when absent. Existing
// tables are left as they are.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	m := g.db.WithContext(ctx).Migrator()
	for _, model := range []any{&memberDomain.Member{}, &loanDomain.Loan{}, &staffDomain.Staff{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return errs.Storage(err)
		}
	}
	return nil
}

func (g *Gateway) CountMembers(ctx context.Context) (int64, error) {
	return g.Members.Count(ctx)
}

func (g *Gateway) LoanSummary(ctx context.Context) (int64, float64, error) {
	s, err := g.Loans.Summary(ctx)
	return s.Count, s.Total, err
}

func (g *Gateway) TotalMemberBalance(ctx context.Context) (float64, error) {
	return g.Members.TotalBalance(ctx)
}

func (g *Gateway) TotalDisbursedAmount(ctx context.Context) (float64, error) {
	return g.Loans.SumByStatus(ctx, loanDomain.StatusDisbursed)
}

// TotalCollectedAmount has no repayment ledger behind it yet; collected
// money is reported as the disbursed principal.
func (g *Gateway) TotalCollectedAmount(ctx context.Context) (float64, error) {
	return g.TotalDisbursedAmount(ctx)
}

func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return errs.Storage(err)
	}
	return translate(g.db, sqlDB.PingContext(ctx), "")
}

// Close releases the connection; call once at process exit.
func (g *Gateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
