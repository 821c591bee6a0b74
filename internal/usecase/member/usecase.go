package member

import (
	"context"
	"errors"
	"strings"

	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/domain/member"

	"github.com/go-playground/validator/v10"
)

const MsgMissingFields = "Please fill in all required fields."

type Usecase struct {
	repo     member.Repository
	validate *validator.Validate
}

func NewUsecase(r member.Repository) *Usecase {
	return &Usecase{repo: r, validate: validator.New()}
}

// Register stores a new member. Missing name, id number or phone is an
// errs.ErrInput and nothing is written.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*MemberDTO, error) {
	in = RegisterInput{
		Name:     strings.TrimSpace(in.Name),
		IDNumber: strings.TrimSpace(in.IDNumber),
		Phone:    strings.TrimSpace(in.Phone),
		Email:    strings.TrimSpace(in.Email),
	}
	if err := u.validate.Struct(in); err != nil {
		return nil, errs.Input(MsgMissingFields, missingFields(err)...)
	}

	m := &member.Member{
		Name:     in.Name,
		IDNumber: in.IDNumber,
		Phone:    in.Phone,
		Email:    in.Email,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) List(ctx context.Context) ([]MemberDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) Count(ctx context.Context) (int64, error) { return u.repo.Count(ctx) }

func toDTO(m *member.Member) *MemberDTO {
	return &MemberDTO{ID: m.ID, Name: m.Name, IDNumber: m.IDNumber, Phone: m.Phone, Email: m.Email, Balance: m.Balance}
}

func missingFields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, fe.Field())
	}
	return out
}
