package api

import (
	"context"
	"fmt"

	"fintrack/internal/core"
)

// InvestmentsAPI wraps the /investments REST surface.
type InvestmentsAPI struct {
	c *Client
}

func NewInvestmentsAPI(c *Client) *InvestmentsAPI {
	return &InvestmentsAPI{c: c}
}

func (a *InvestmentsAPI) List(ctx context.Context) ([]core.Investment, error) {
	var out []core.Investment
	if err := a.c.get(ctx, "/investments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *InvestmentsAPI) Summary(ctx context.Context) (core.InvestmentSummary, error) {
	var out core.InvestmentSummary
	if err := a.c.get(ctx, "/investments/summary", nil, &out); err != nil {
		return core.InvestmentSummary{}, err
	}
	return out, nil
}

func (a *InvestmentsAPI) Create(ctx context.Context, inv core.Investment) (core.Investment, error) {
	var out core.Investment
	if err := a.c.post(ctx, "/investments", inv, &out); err != nil {
		return core.Investment{}, err
	}
	return out, nil
}

func (a *InvestmentsAPI) Update(ctx context.Context, id int64, inv core.Investment) (core.Investment, error) {
	var out core.Investment
	if err := a.c.put(ctx, fmt.Sprintf("/investments/%d", id), inv, &out); err != nil {
		return core.Investment{}, err
	}
	return out, nil
}

func (a *InvestmentsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/investments/%d", id))
}
