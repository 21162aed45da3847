package forms

import (
	"fintrack/internal/core"
	"fintrack/internal/notify"
)

// LoanForm collects a draft loan. Compounding frequency defaults to monthly
// and only matters when the interest type is compound.
type LoanForm struct {
	bus   *notify.Bus
	state State
	id    int64

	Name                 string
	PrincipalAmount      string
	InterestRate         string
	InterestType         string
	CompoundingFrequency string
	StartDate            string
	TenureMonths         string
	CurrentBalance       string
}

func NewLoanForm(bus *notify.Bus) *LoanForm {
	return &LoanForm{
		bus:                  bus,
		InterestType:         string(core.InterestSimple),
		CompoundingFrequency: string(core.CompoundMonthly),
		StartDate:            core.Today().String(),
	}
}

func EditLoanForm(bus *notify.Bus, l core.Loan) *LoanForm {
	freq := string(l.CompoundingFrequency)
	if freq == "" {
		freq = string(core.CompoundMonthly)
	}
	return &LoanForm{
		bus:                  bus,
		id:                   l.ID,
		Name:                 l.Name,
		PrincipalAmount:      formatAmount(l.PrincipalAmount),
		InterestRate:         formatAmount(l.InterestRate),
		InterestType:         string(l.InterestType),
		CompoundingFrequency: freq,
		StartDate:            l.StartDate.String(),
		TenureMonths:         formatInt(l.TenureMonths),
		CurrentBalance:       formatAmount(l.CurrentBalance),
	}
}

func (f *LoanForm) State() State {
	return f.state
}

func (f *LoanForm) Fail() {
	f.state = Editing
}

func (f *LoanForm) Submit() (payload core.Loan, ok bool) {
	if f.state != Editing {
		return core.Loan{}, false
	}

	principal, errP := core.ParsePositiveAmount(f.PrincipalAmount)
	rate, errR := core.ParsePositiveAmount(f.InterestRate)
	balance, errB := core.ParsePositiveAmount(f.CurrentBalance)
	tenure, errT := core.ParsePositiveInt(f.TenureMonths)
	if errP != nil || errR != nil || errB != nil || errT != nil {
		f.bus.Error("Please enter valid positive numbers")
		return core.Loan{}, false
	}
	if f.InterestType == "" {
		f.bus.Error("Please select interest type")
		return core.Loan{}, false
	}
	date, err := core.ParseDate(f.StartDate)
	if err != nil {
		f.bus.Error("Please enter a valid date")
		return core.Loan{}, false
	}

	f.state = Submitting
	return core.Loan{
		ID:                   f.id,
		Name:                 f.Name,
		PrincipalAmount:      principal,
		InterestRate:         rate,
		InterestType:         core.InterestType(f.InterestType),
		CompoundingFrequency: core.CompoundingFrequency(f.CompoundingFrequency),
		StartDate:            date,
		TenureMonths:         tenure,
		CurrentBalance:       balance,
	}, true
}
