package shell

import (
	"errors"
	"fmt"
)

type Section string

const (
	Dashboard   Section = "Dashboard"
	Clients     Section = "Clients"
	Loans       Section = "Loans"
	Savings     Section = "Savings"
	Institution Section = "Institution"
	Accounting  Section = "Accounting"
	Reports     Section = "Reports"
	Admin       Section = "Admin"
	Settings    Section = "Settings"
)

// Sections lists the navigation buttons in display order.
var Sections = []Section{
	Dashboard, Clients, Loans, Savings, Institution, Accounting, Reports, Admin, Settings,
}

var ErrUnknownSection = errors.New("unknown section")

func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
