package api

import (
	"context"
	"fmt"

	"fintrack/internal/core"
)

// SIPsAPI wraps the /sips REST surface.
type SIPsAPI struct {
	c *Client
}

func NewSIPsAPI(c *Client) *SIPsAPI {
	return &SIPsAPI{c: c}
}

func (a *SIPsAPI) List(ctx context.Context) ([]core.SIP, error) {
	var out []core.SIP
	if err := a.c.get(ctx, "/sips", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SIPsAPI) Summary(ctx context.Context) (core.SIPSummary, error) {
	var out core.SIPSummary
	if err := a.c.get(ctx, "/sips/summary", nil, &out); err != nil {
		return core.SIPSummary{}, err
	}
	return out, nil
}

func (a *SIPsAPI) Create(ctx context.Context, s core.SIP) (core.SIP, error) {
	var out core.SIP
	if err := a.c.post(ctx, "/sips", s, &out); err != nil {
		return core.SIP{}, err
	}
	return out, nil
}

func (a *SIPsAPI) Update(ctx context.Context, id int64, s core.SIP) (core.SIP, error) {
	var out core.SIP
	if err := a.c.put(ctx, fmt.Sprintf("/sips/%d", id), s, &out); err != nil {
		return core.SIP{}, err
	}
	return out, nil
}

func (a *SIPsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/sips/%d", id))
}
