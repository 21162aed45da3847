package api

import (
	"context"
	"fmt"
	"net/url"

	"fintrack/internal/core"
)

// ExpensesAPI wraps the /expenses REST surface.
type ExpensesAPI struct {
	c *Client
}

func NewExpensesAPI(c *Client) *ExpensesAPI {
	return &ExpensesAPI{c: c}
}

func (a *ExpensesAPI) List(ctx context.Context) ([]core.Expense, error) {
	var out []core.Expense
	if err := a.c.get(ctx, "/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ExpensesAPI) ListByDateRange(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	q := url.Values{}
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())
	var out []core.Expense
	if err := a.c.get(ctx, "/expenses/by-date-range", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ExpensesAPI) ListByCategory(ctx context.Context, category string) ([]core.Expense, error) {
	q := url.Values{}
	q.Set("category", category)
	var out []core.Expense
	if err := a.c.get(ctx, "/expenses/by-category", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary fetches range-scoped totals. The backend defaults missing bounds to
// the current month, so zero dates are simply omitted.
func (a *ExpensesAPI) Summary(ctx context.Context, start, end core.Date) (core.ExpenseSummary, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("startDate", start.String())
	}
	if !end.IsZero() {
		q.Set("endDate", end.String())
	}
	var out core.ExpenseSummary
	if err := a.c.get(ctx, "/expenses/summary", q, &out); err != nil {
		return core.ExpenseSummary{}, err
	}
	return out, nil
}

func (a *ExpensesAPI) AverageMonthly(ctx context.Context, category string) (float64, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	var out float64
	if err := a.c.get(ctx, "/expenses/average-monthly", q, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func (a *ExpensesAPI) Create(ctx context.Context, e core.Expense) (core.Expense, error) {
	var out core.Expense
	if err := a.c.post(ctx, "/expenses", e, &out); err != nil {
		return core.Expense{}, err
	}
	return out, nil
}

func (a *ExpensesAPI) Update(ctx context.Context, id int64, e core.Expense) (core.Expense, error) {
	var out core.Expense
	if err := a.c.put(ctx, fmt.Sprintf("/expenses/%d", id), e, &out); err != nil {
		return core.Expense{}, err
	}
	return out, nil
}

func (a *ExpensesAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/expenses/%d", id))
}
