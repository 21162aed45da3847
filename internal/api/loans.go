package api

import (
	"context"
	"fmt"

	"fintrack/internal/core"
)

// LoansAPI wraps the /loans REST surface.
type LoansAPI struct {
	c *Client
}

func NewLoansAPI(c *Client) *LoansAPI {
	return &LoansAPI{c: c}
}

func (a *LoansAPI) List(ctx context.Context) ([]core.Loan, error) {
	var out []core.Loan
	if err := a.c.get(ctx, "/loans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *LoansAPI) Summary(ctx context.Context) (core.LoanSummary, error) {
	var out core.LoanSummary
	if err := a.c.get(ctx, "/loans/summary", nil, &out); err != nil {
		return core.LoanSummary{}, err
	}
	return out, nil
}

func (a *LoansAPI) Create(ctx context.Context, l core.Loan) (core.Loan, error) {
	var out core.Loan
	if err := a.c.post(ctx, "/loans", l, &out); err != nil {
		return core.Loan{}, err
	}
	return out, nil
}

func (a *LoansAPI) Update(ctx context.Context, id int64, l core.Loan) (core.Loan, error) {
	var out core.Loan
	if err := a.c.put(ctx, fmt.Sprintf("/loans/%d", id), l, &out); err != nil {
		return core.Loan{}, err
	}
	return out, nil
}

func (a *LoansAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/loans/%d", id))
}
