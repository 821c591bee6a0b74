package loan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/domain/loan"
	"sacco-admin/internal/domain/uow"

	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingFields = "Please fill in all fields."
	MsgInvalidInput  = "Invalid input."
)

type Usecase struct {
	repo     loan.Repository
	uow      uow.UnitOfWork
	validate *validator.Validate
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, validate: validator.New()}
}

// Apply records a Pending loan for an existing member. Every field is
// required; member id must be a positive integer and amount/rate finite
// numbers. The member lookup and the insert share one transaction.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	in = ApplyInput{
		MemberID:     strings.TrimSpace(in.MemberID),
		Amount:       strings.TrimSpace(in.Amount),
		InterestRate: strings.TrimSpace(in.InterestRate),
	}
	if err := u.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		fields := []string{}
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fields = append(fields, fe.Field())
			}
		}
		return nil, errs.Input(MsgMissingFields, fields...)
	}

	memberID, err := strconv.ParseUint(in.MemberID, 10, 64)
	if err != nil || memberID == 0 {
		return nil, errs.Input(MsgInvalidInput, "MemberID")
	}
	amount, ok := parseNumber(in.Amount)
	if !ok {
		return nil, errs.Input(MsgInvalidInput, "Amount")
	}
	rate, ok := parseNumber(in.InterestRate)
	if !ok {
		return nil, errs.Input(MsgInvalidInput, "InterestRate")
	}

	l := &loan.Loan{
		MemberID:     memberID,
		Amount:       amount,
		InterestRate: rate,
		Status:       loan.StatusPending,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		exists, err := r.Members.Exists(ctx, memberID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.Input(fmt.Sprintf("member %d does not exist", memberID), "MemberID")
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{ID: l.ID, MemberID: l.MemberID, Amount: l.Amount, InterestRate: l.InterestRate, Status: string(l.Status)}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
