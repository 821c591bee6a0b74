package shell

import (
	"fmt"

	"sacco-admin/internal/usecase/dashboard"
	"sacco-admin/internal/usecase/loan"
	"sacco-admin/internal/usecase/member"
)

const (
	TabCreateClient = "Create Client"
	TabViewClients  = "View Clients"
	TabApplyLoan    = "Apply for Loan"
	TabViewLoans    = "View Loans"

	ChartTitle       = "Loans: Disbursed vs Collected"
	NoLoanDataNotice = "No loan data available for visualization."
)

// View is the content pane for one render. At most one of Dashboard,
// Clients or Loans is set; placeholder sections leave all three nil.
type View struct {
	Section   Section
	Dashboard *DashboardView
	Clients   *ClientsView
	Loans     *LoansView
	Flash     *Flash
}

// Blank reports whether the content pane is empty.
func (v View) Blank() bool {
	return v.Dashboard == nil && v.Clients == nil && v.Loans == nil && v.Flash == nil
}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is the blocking notification shown after a form submission.
type Flash struct {
	Kind    FlashKind
	Title   string
	Message string
}

type DashboardView struct {
	Lines []string
	// Chart is nil when both slices are zero; Notice is shown instead.
	Chart  *PieChart
	Notice string
}

type PieChart struct {
	Title  string
	Slices []Slice
}

type Slice struct {
	Label   string
	Value   float64
	Percent float64
}

func (s Slice) PercentLabel() string { return fmt.Sprintf("%.1f%%", s.Percent) }

type ClientsView struct {
	ActiveTab string
	RequestID string
	// Form echoes the submitted values after a failed registration.
	Form      member.RegisterInput
	Refreshed bool
	Rows      []member.MemberDTO
}

type LoansView struct {
	ActiveTab string
	RequestID string
	Form      loan.ApplyInput
	Refreshed bool
	Rows      []loan.LoanDTO
}

func dashboardLines(s *dashboard.Summary) []string {
	return []string{
		fmt.Sprintf("Total Clients: %d", s.TotalClients),
		fmt.Sprintf("Total Loans: %d (Amount: %s)", s.TotalLoans, money(s.TotalLoanAmount)),
		fmt.Sprintf("Total Savings: %s", money(s.TotalSavings)),
		fmt.Sprintf("Total Cash in Circulation: %s", money(s.CashInCirculation)),
	}
}

// newPieChart returns nil when every slice is zero.
func newPieChart(title string, slices ...Slice) *PieChart {
	var total float64
	empty := true
	for _, s := range slices {
		total += s.Value
		empty = empty && s.Value == 0
	}
	if empty {
		return nil
	}
	out := make([]Slice, len(slices))
	for i, s := range slices {
		if total != 0 {
			s.Percent = s.Value / total * 100
		}
		out[i] = s
	}
	return &PieChart{Title: title, Slices: out}
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }
