package forms

import (
	"fintrack/internal/core"
	"fintrack/internal/notify"
)

// SIPForm collects a draft systematic investment plan. It applies the same
// positive-number guards as the other forms.
type SIPForm struct {
	bus   *notify.Bus
	state State
	id    int64

	Name           string
	SchemeCode     string
	MonthlyAmount  string
	StartDate      string
	DurationMonths string
	CurrentNAV     string
	TotalUnits     string
}

func NewSIPForm(bus *notify.Bus) *SIPForm {
	return &SIPForm{bus: bus, StartDate: core.Today().String()}
}

func EditSIPForm(bus *notify.Bus, s core.SIP) *SIPForm {
	return &SIPForm{
		bus:            bus,
		id:             s.ID,
		Name:           s.Name,
		SchemeCode:     s.SchemeCode,
		MonthlyAmount:  formatAmount(s.MonthlyAmount),
		StartDate:      s.StartDate.String(),
		DurationMonths: formatInt(s.DurationMonths),
		CurrentNAV:     formatAmount(s.CurrentNAV),
		TotalUnits:     formatAmount(s.TotalUnits),
	}
}

func (f *SIPForm) State() State {
	return f.state
}

func (f *SIPForm) Fail() {
	f.state = Editing
}

func (f *SIPForm) Submit() (payload core.SIP, ok bool) {
	if f.state != Editing {
		return core.SIP{}, false
	}

	monthly, errM := core.ParsePositiveAmount(f.MonthlyAmount)
	nav, errN := core.ParsePositiveAmount(f.CurrentNAV)
	units, errU := core.ParsePositiveAmount(f.TotalUnits)
	duration, errD := core.ParsePositiveInt(f.DurationMonths)
	if errM != nil || errN != nil || errU != nil || errD != nil {
		f.bus.Error("Please enter valid positive numbers")
		return core.SIP{}, false
	}
	date, err := core.ParseDate(f.StartDate)
	if err != nil {
		f.bus.Error("Please enter a valid date")
		return core.SIP{}, false
	}

	f.state = Submitting
	return core.SIP{
		ID:             f.id,
		Name:           f.Name,
		SchemeCode:     f.SchemeCode,
		MonthlyAmount:  monthly,
		StartDate:      date,
		DurationMonths: duration,
		CurrentNAV:     nav,
		TotalUnits:     units,
	}, true
}
