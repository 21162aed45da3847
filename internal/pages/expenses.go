package pages

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/events"
	applog "fintrack/internal/log"
	"fintrack/internal/snapshot"
)

// ExpensesPage owns the expense list and summary for the active date range.
// The range defaults to the first of the current month through today and
// every range change triggers a reload.
type ExpensesPage struct {
	mu   sync.Mutex
	svc  ExpenseService
	snap *snapshot.Store
	pub  *events.Publisher
	log  *applog.Logger

	gen     uint64
	loading bool

	expenses []core.Expense
	summary  core.ExpenseSummary
	start    core.Date
	end      core.Date

	Search              string
	CategoryFilter      string
	PaymentMethodFilter string
}

func NewExpensesPage(svc ExpenseService, snap *snapshot.Store, pub *events.Publisher, logger *applog.Logger) *ExpensesPage {
	today := core.Today()
	return &ExpensesPage{
		svc:   svc,
		snap:  snap,
		pub:   pub,
		log:   logger.WithComponent(applog.ComponentPages),
		start: core.NewDate(today.Year(), int(today.Month()), 1),
		end:   today,
	}
}

func (p *ExpensesPage) DateRange() (start, end core.Date) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.start, p.end
}

// SetDateRange changes the active range and reloads immediately.
func (p *ExpensesPage) SetDateRange(ctx context.Context, start, end core.Date) error {
	p.mu.Lock()
	p.start, p.end = start, end
	p.mu.Unlock()
	return p.Load(ctx)
}

func (p *ExpensesPage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Load fetches list and summary concurrently. While in flight the page stays
// readable with its previous data; on failure the stale data is kept and the
// transport layer has already emitted the toast. A load that completes after
// a newer one started discards its result.
func (p *ExpensesPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	start, end := p.start, p.end
	p.mu.Unlock()

	var (
		list    []core.Expense
		summary core.ExpenseSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = p.svc.ListByDateRange(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = p.svc.Summary(gctx, start, end)
		return err
	})
	err := g.Wait()

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		p.log.Debug("Discarding stale load result",
			applog.FieldEntity, snapshot.EntityExpenses, applog.FieldGeneration, gen)
		return nil
	}
	p.loading = false
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.expenses = list
	p.summary = summary
	p.mu.Unlock()

	if serr := p.snap.Save(ctx, snapshot.EntityExpenses, list); serr != nil {
		p.log.Warn("Snapshot save failed",
			applog.FieldEntity, snapshot.EntityExpenses, applog.FieldError, serr.Error())
	}
	return nil
}

// RestoreSnapshot fills the list from the local store after a failed cold
// load. The summary stays empty; the data is explicitly stale.
func (p *ExpensesPage) RestoreSnapshot(ctx context.Context) (time.Time, error) {
	var list []core.Expense
	fetchedAt, err := p.snap.Load(ctx, snapshot.EntityExpenses, &list)
	if err != nil {
		return time.Time{}, err
	}
	p.mu.Lock()
	p.expenses = list
	p.mu.Unlock()
	return fetchedAt, nil
}

func (p *ExpensesPage) Expenses() []core.Expense {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Expense, len(p.expenses))
	copy(out, p.expenses)
	return out
}

func (p *ExpensesPage) Summary() core.ExpenseSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

// Filtered applies the free-text search and the category/payment-method
// filters to the last-fetched list. It never refetches.
func (p *ExpensesPage) Filtered() []core.Expense {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]core.Expense, 0, len(p.expenses))
	for _, e := range p.expenses {
		if !matches(p.Search, e.Description, e.Category) {
			continue
		}
		if p.CategoryFilter != "" && e.Category != p.CategoryFilter {
			continue
		}
		if p.PaymentMethodFilter != "" && e.PaymentMethod != p.PaymentMethodFilter {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (p *ExpensesPage) CategoryBreakdown() []core.NameAmount {
	return core.ExpensesByCategory(p.Filtered())
}

func (p *ExpensesPage) PaymentMethodBreakdown() []core.NameAmount {
	return core.ExpensesByPaymentMethod(p.Filtered())
}

func (p *ExpensesPage) MonthlyTotals() []core.MonthAmount {
	return core.MonthlyExpenseTotals(p.Filtered(), core.TrailingMonths, time.Now().UTC())
}

// Create persists through the API and, on success, appends to the local list.
// On failure the caller keeps its dialog open; the toast already fired at the
// transport boundary.
func (p *ExpensesPage) Create(ctx context.Context, e core.Expense) (core.Expense, error) {
	created, err := p.svc.Create(ctx, e)
	if err != nil {
		return core.Expense{}, err
	}
	p.mu.Lock()
	p.expenses = append(p.expenses, created)
	p.mu.Unlock()
	p.publish(ctx, events.ActionCreated, created.ID)
	return created, nil
}

// ApplyUpdate patches the local list with an entity the row actions already
// persisted. No refetch.
func (p *ExpensesPage) ApplyUpdate(e core.Expense) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.expenses {
		if p.expenses[i].ID == e.ID {
			p.expenses[i] = e
			break
		}
	}
}

// ApplyDelete removes an entity the row actions already deleted.
func (p *ExpensesPage) ApplyDelete(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.expenses {
		if p.expenses[i].ID == id {
			p.expenses = append(p.expenses[:i], p.expenses[i+1:]...)
			break
		}
	}
}

func (p *ExpensesPage) publish(ctx context.Context, action events.Action, id int64) {
	if err := p.pub.Publish(ctx, events.NewEvent(snapshot.EntityExpenses, action, id)); err != nil {
		p.log.Warn("Event publish failed",
			applog.FieldEntity, snapshot.EntityExpenses,
			applog.FieldEntityID, id,
			applog.FieldError, err.Error())
	}
}
