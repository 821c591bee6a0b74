package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	List(ctx context.Context) ([]Loan, error)
	Summary(ctx context.Context) (Summary, error)
	// SumByStatus returns 0 when no loan has the status.
	SumByStatus(ctx context.Context, status Status) (float64, error)
}
