package forms

import (
	"fintrack/internal/core"
	"fintrack/internal/notify"
)

// ExpenseForm collects a draft expense. Field values are raw strings exactly
// as the user typed them; Submit normalizes them into a core.Expense.
type ExpenseForm struct {
	bus   *notify.Bus
	state State
	id    int64

	Description   string
	Amount        string
	Date          string
	Category      string
	PaymentMethod string
}

// NewExpenseForm returns a blank form defaulted to today's date.
func NewExpenseForm(bus *notify.Bus) *ExpenseForm {
	return &ExpenseForm{bus: bus, Date: core.Today().String()}
}

// EditExpenseForm returns a form pre-filled from an existing expense.
func EditExpenseForm(bus *notify.Bus, e core.Expense) *ExpenseForm {
	return &ExpenseForm{
		bus:           bus,
		id:            e.ID,
		Description:   e.Description,
		Amount:        formatAmount(e.Amount),
		Date:          e.Date.String(),
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
	}
}

func (f *ExpenseForm) State() State {
	return f.state
}

// Fail returns the form to editing after the caller's API call failed, so the
// dialog stays open with the draft intact.
func (f *ExpenseForm) Fail() {
	f.state = Editing
}

// Submit validates the draft. On violation it emits one error toast, stays in
// editing, and reports ok=false. On success it enters submitting and returns
// the normalized payload; persistence is the caller's job.
func (f *ExpenseForm) Submit() (payload core.Expense, ok bool) {
	if f.state != Editing {
		return core.Expense{}, false
	}

	amount, err := core.ParsePositiveAmount(f.Amount)
	if err != nil {
		f.bus.Error("Amount must be a positive number")
		return core.Expense{}, false
	}
	if f.Category == "" || f.PaymentMethod == "" {
		f.bus.Error("Please select category and payment method")
		return core.Expense{}, false
	}
	date, err := core.ParseDate(f.Date)
	if err != nil {
		f.bus.Error("Please enter a valid date")
		return core.Expense{}, false
	}

	f.state = Submitting
	return core.Expense{
		ID:            f.id,
		Description:   f.Description,
		Amount:        amount,
		Date:          date,
		Category:      f.Category,
		PaymentMethod: f.PaymentMethod,
	}, true
}
