package member

import "context"

type Repository interface {
	// Create fails with errs.ErrDuplicateKey when id_number is taken.
	Create(ctx context.Context, m *Member) error
	List(ctx context.Context) ([]Member, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	TotalBalance(ctx context.Context) (float64, error)
}
