package pages

import (
	"context"
	"sync"
	"testing"
	"time"

	"fintrack/internal/core"
)

type fakeInvestmentSvc struct {
	mu      sync.Mutex
	list    []core.Investment
	summary core.InvestmentSummary
	err     error

	// When set, the next List call signals started and then waits for block.
	block   chan struct{}
	started chan struct{}
}

func (f *fakeInvestmentSvc) List(ctx context.Context) ([]core.Investment, error) {
	f.mu.Lock()
	block, started := f.block, f.started
	f.block, f.started = nil, nil
	list, err := f.list, f.err
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return list, err
}

func (f *fakeInvestmentSvc) Summary(ctx context.Context) (core.InvestmentSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summary, f.err
}

func (f *fakeInvestmentSvc) Create(ctx context.Context, inv core.Investment) (core.Investment, error) {
	inv.ID = 100
	return inv, nil
}

func (f *fakeInvestmentSvc) Update(ctx context.Context, id int64, inv core.Investment) (core.Investment, error) {
	inv.ID = id
	return inv, nil
}

func (f *fakeInvestmentSvc) Delete(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeInvestmentSvc) set(list []core.Investment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = list
}

func TestInvestmentsPageLoad(t *testing.T) {
	svc := &fakeInvestmentSvc{
		list: []core.Investment{
			{ID: 1, Name: "Index fund", Type: core.InvestmentETF, Quantity: 10, CurrentPrice: 220},
		},
		summary: core.InvestmentSummary{TotalInvested: 2000, TotalCurrentValue: 2200},
	}
	p := NewInvestmentsPage(svc, nil, nil, testLogger())

	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Loading() {
		t.Error("loading should resolve false")
	}
	if len(p.Investments()) != 1 {
		t.Errorf("got %d investments, want 1", len(p.Investments()))
	}
	if p.Summary().TotalCurrentValue != 2200 {
		t.Errorf("summary = %+v", p.Summary())
	}
}

func TestInvestmentsPageStaleLoadDiscarded(t *testing.T) {
	stale := []core.Investment{{ID: 1, Name: "Old holding"}}
	fresh := []core.Investment{{ID: 2, Name: "New holding"}}

	svc := &fakeInvestmentSvc{
		list:    stale,
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	block, started := svc.block, svc.started
	p := NewInvestmentsPage(svc, nil, nil, testLogger())

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background()) }()
	<-started // first load is in flight, holding the stale list

	svc.set(fresh)
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	close(block)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first load failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first load never completed")
	}

	got := p.Investments()
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("stale load overwrote fresh data: %v", got)
	}
}

func TestInvestmentsPageLoadTwiceIsIdempotent(t *testing.T) {
	svc := &fakeInvestmentSvc{
		list:    []core.Investment{{ID: 1, Name: "Index fund"}},
		summary: core.InvestmentSummary{TotalInvested: 2000},
	}
	p := NewInvestmentsPage(svc, nil, nil, testLogger())

	for i := 0; i < 2; i++ {
		if err := p.Load(context.Background()); err != nil {
			t.Fatalf("load %d: %v", i+1, err)
		}
	}
	if got := p.Investments(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("list after double load = %v", got)
	}
	if p.Summary().TotalInvested != 2000 {
		t.Errorf("summary after double load = %+v", p.Summary())
	}
}

func TestInvestmentsPageFiltered(t *testing.T) {
	svc := &fakeInvestmentSvc{
		list: []core.Investment{
			{ID: 1, Name: "Index fund", Symbol: "NIFTYBEES", Type: core.InvestmentETF},
			{ID: 2, Name: "Blue chip", Symbol: "RELI", Type: core.InvestmentStock},
		},
	}
	p := NewInvestmentsPage(svc, nil, nil, testLogger())
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.TypeFilter = "STOCK"
	if got := p.Filtered(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("type filter = %v, want only the stock", got)
	}

	p.TypeFilter = ""
	p.Search = "niftybees"
	if got := p.Filtered(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("symbol search = %v, want only the ETF", got)
	}
}

func TestInvestmentsPageValueByType(t *testing.T) {
	svc := &fakeInvestmentSvc{
		list: []core.Investment{
			{Type: core.InvestmentETF, Quantity: 10, CurrentPrice: 100},
			{Type: core.InvestmentStock, Quantity: 5, CurrentPrice: 50},
		},
	}
	p := NewInvestmentsPage(svc, nil, nil, testLogger())
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.ValueByType()
	if len(got) != 2 || got[0].Name != "ETF" || got[0].Amount != 1000 {
		t.Errorf("ValueByType() = %v", got)
	}
}
