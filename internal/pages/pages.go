// Package pages implements the per-entity screens of the dashboard as
// view-models: each page owns the entities it loaded, runs the list+summary
// fetch cycle, applies in-memory filters, and derives chart aggregates from
// the filtered list on every call.
//
// Loads are guarded by a generation counter: re-triggering a load bumps the
// generation, and any cycle that completes under a stale generation discards
// its result instead of applying it.
package pages

import (
	"context"
	"strings"

	"fintrack/internal/core"
)

// Service interfaces are declared here, on the consumer side; the api package
// clients satisfy them.
type (
	ExpenseService interface {
		ListByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error)
		Summary(ctx context.Context, start, end core.Date) (core.ExpenseSummary, error)
		Create(ctx context.Context, e core.Expense) (core.Expense, error)
		Update(ctx context.Context, id int64, e core.Expense) (core.Expense, error)
		Delete(ctx context.Context, id int64) error
	}

	InvestmentService interface {
		List(ctx context.Context) ([]core.Investment, error)
		Summary(ctx context.Context) (core.InvestmentSummary, error)
		Create(ctx context.Context, inv core.Investment) (core.Investment, error)
		Update(ctx context.Context, id int64, inv core.Investment) (core.Investment, error)
		Delete(ctx context.Context, id int64) error
	}

	LoanService interface {
		List(ctx context.Context) ([]core.Loan, error)
		Summary(ctx context.Context) (core.LoanSummary, error)
		Create(ctx context.Context, l core.Loan) (core.Loan, error)
		Update(ctx context.Context, id int64, l core.Loan) (core.Loan, error)
		Delete(ctx context.Context, id int64) error
	}

	SIPService interface {
		List(ctx context.Context) ([]core.SIP, error)
		Summary(ctx context.Context) (core.SIPSummary, error)
		Create(ctx context.Context, s core.SIP) (core.SIP, error)
		Update(ctx context.Context, id int64, s core.SIP) (core.SIP, error)
		Delete(ctx context.Context, id int64) error
	}
)

// matches reports whether any of the fields contains term, case-insensitive.
// An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
