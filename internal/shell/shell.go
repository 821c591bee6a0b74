package shell

import (
	"context"
	"errors"
	"sync"

	"sacco-admin/internal/domain/errs"
	"sacco-admin/internal/usecase/dashboard"
	"sacco-admin/internal/usecase/loan"
	"sacco-admin/internal/usecase/member"
	"sacco-admin/pkg/id"
)

type SummarySource interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

type MemberService interface {
	Register(ctx context.Context, in member.RegisterInput) (*member.MemberDTO, error)
	List(ctx context.Context) ([]member.MemberDTO, error)
}

type LoanService interface {
	Apply(ctx context.Context, in loan.ApplyInput) (*loan.LoanDTO, error)
	List(ctx context.Context) ([]loan.LoanDTO, error)
}

// Options tune a single render.
type Options struct {
	Tab string
	// Refresh loads the section's table; tables are never filled otherwise.
	Refresh bool
}

// Renderer builds the content pane for one section.
type Renderer func(ctx context.Context, opts Options) (View, error)

// Shell is the navigation state: the selected section plus the dispatch
// table that renders it.
type Shell struct {
	mu       sync.Mutex
	current  Section
	renders  map[Section]Renderer
	summary  SummarySource
	members  MemberService
	loans    LoanService
	newReqID func() string
}

func New(summary SummarySource, members MemberService, loans LoanService) *Shell {
	s := &Shell{
		current:  Dashboard,
		summary:  summary,
		members:  members,
		loans:    loans,
		newReqID: id.NewID32,
	}
	s.renders = map[Section]Renderer{
		Dashboard:   s.renderDashboard,
		Clients:     s.renderClients,
		Loans:       s.renderLoans,
		Savings:     renderBlank,
		Institution: renderBlank,
		Accounting:  renderBlank,
		Reports:     renderBlank,
		Admin:       renderBlank,
		Settings:    renderBlank,
	}
	return s
}

func (s *Shell) Current() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Select switches to the named section and renders it from scratch.
func (s *Shell) Select(ctx context.Context, name string, opts Options) (View, error) {
	sec, err := ParseSection(name)
	if err != nil {
		return View{}, err
	}
	s.mu.Lock()
	s.current = sec
	s.mu.Unlock()

	v, err := s.renders[sec](ctx, opts)
	v.Section = sec
	return v, err
}

func renderBlank(context.Context, Options) (View, error) { return View{}, nil }

func (s *Shell) renderDashboard(ctx context.Context, _ Options) (View, error) {
	sum, err := s.summary.Summary(ctx)
	if err != nil {
		return View{Flash: errorFlash(err)}, err
	}
	dv := &DashboardView{
		Lines: dashboardLines(sum),
		Chart: newPieChart(ChartTitle,
			Slice{Label: "Disbursed", Value: sum.TotalLoanAmount},
			Slice{Label: "Collected", Value: sum.Collected},
		),
	}
	if dv.Chart == nil {
		dv.Notice = NoLoanDataNotice
	}
	return View{Dashboard: dv}, nil
}

func (s *Shell) renderClients(ctx context.Context, opts Options) (View, error) {
	cv := &ClientsView{ActiveTab: TabCreateClient, RequestID: s.newReqID()}
	if opts.Tab == TabViewClients || opts.Refresh {
		cv.ActiveTab = TabViewClients
	}
	if opts.Refresh {
		rows, err := s.members.List(ctx)
		if err != nil {
			return View{Clients: cv, Flash: errorFlash(err)}, err
		}
		cv.Rows, cv.Refreshed = rows, true
	}
	return View{Clients: cv}, nil
}

func (s *Shell) renderLoans(ctx context.Context, opts Options) (View, error) {
	lv := &LoansView{ActiveTab: TabApplyLoan, RequestID: s.newReqID()}
	if opts.Tab == TabViewLoans || opts.Refresh {
		lv.ActiveTab = TabViewLoans
	}
	if opts.Refresh {
		rows, err := s.loans.List(ctx)
		if err != nil {
			return View{Loans: lv, Flash: errorFlash(err)}, err
		}
		lv.Rows, lv.Refreshed = rows, true
	}
	return View{Loans: lv}, nil
}

// SubmitMember registers a member from the Create Client form. The
// returned error is the same one summarised in the view's Flash.
func (s *Shell) SubmitMember(ctx context.Context, in member.RegisterInput) (View, error) {
	s.mu.Lock()
	s.current = Clients
	s.mu.Unlock()

	cv := &ClientsView{ActiveTab: TabCreateClient, RequestID: s.newReqID()}
	v := View{Section: Clients, Clients: cv}
	if _, err := s.members.Register(ctx, in); err != nil {
		cv.Form = in
		v.Flash = errorFlash(err)
		return v, err
	}
	v.Flash = &Flash{Kind: FlashSuccess, Title: "Success", Message: "Member registered successfully!"}
	return v, nil
}

// SubmitLoan applies for a loan from the Apply for Loan form.
func (s *Shell) SubmitLoan(ctx context.Context, in loan.ApplyInput) (View, error) {
	s.mu.Lock()
	s.current = Loans
	s.mu.Unlock()

	lv := &LoansView{ActiveTab: TabApplyLoan, RequestID: s.newReqID()}
	v := View{Section: Loans, Loans: lv}
	if _, err := s.loans.Apply(ctx, in); err != nil {
		lv.Form = in
		v.Flash = errorFlash(err)
		return v, err
	}
	v.Flash = &Flash{Kind: FlashSuccess, Title: "Success", Message: "Loan application submitted."}
	return v, nil
}

func errorFlash(err error) *Flash {
	var ie *errs.InputError
	if errors.As(err, &ie) {
		return &Flash{Kind: FlashError, Title: "Error", Message: ie.Msg}
	}
	return &Flash{Kind: FlashError, Title: "Error", Message: "Database Error: " + err.Error()}
}
