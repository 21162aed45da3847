package forms

import (
	"fintrack/internal/core"
	"fintrack/internal/notify"
)

// InvestmentForm collects a draft investment holding.
type InvestmentForm struct {
	bus   *notify.Bus
	state State
	id    int64

	Name          string
	Symbol        string
	Type          string
	Quantity      string
	PurchasePrice string
	CurrentPrice  string
	PurchaseDate  string
}

func NewInvestmentForm(bus *notify.Bus) *InvestmentForm {
	return &InvestmentForm{bus: bus, PurchaseDate: core.Today().String()}
}

func EditInvestmentForm(bus *notify.Bus, inv core.Investment) *InvestmentForm {
	return &InvestmentForm{
		bus:           bus,
		id:            inv.ID,
		Name:          inv.Name,
		Symbol:        inv.Symbol,
		Type:          string(inv.Type),
		Quantity:      formatAmount(inv.Quantity),
		PurchasePrice: formatAmount(inv.PurchasePrice),
		CurrentPrice:  formatAmount(inv.CurrentPrice),
		PurchaseDate:  inv.PurchaseDate.String(),
	}
}

func (f *InvestmentForm) State() State {
	return f.state
}

func (f *InvestmentForm) Fail() {
	f.state = Editing
}

func (f *InvestmentForm) Submit() (payload core.Investment, ok bool) {
	if f.state != Editing {
		return core.Investment{}, false
	}

	quantity, errQ := core.ParsePositiveAmount(f.Quantity)
	purchasePrice, errP := core.ParsePositiveAmount(f.PurchasePrice)
	currentPrice, errC := core.ParsePositiveAmount(f.CurrentPrice)
	if errQ != nil || errP != nil || errC != nil {
		f.bus.Error("Quantity and prices must be positive numbers")
		return core.Investment{}, false
	}
	if f.Type == "" {
		f.bus.Error("Please select investment type")
		return core.Investment{}, false
	}
	date, err := core.ParseDate(f.PurchaseDate)
	if err != nil {
		f.bus.Error("Please enter a valid date")
		return core.Investment{}, false
	}

	f.state = Submitting
	return core.Investment{
		ID:            f.id,
		Name:          f.Name,
		Symbol:        f.Symbol,
		Type:          core.InvestmentType(f.Type),
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
		PurchaseDate:  date,
	}, true
}
