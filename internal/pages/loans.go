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

// LoansPage owns the loan list and debt summary.
type LoansPage struct {
	mu   sync.Mutex
	svc  LoanService
	snap *snapshot.Store
	pub  *events.Publisher
	log  *applog.Logger

	gen     uint64
	loading bool

	loans   []core.Loan
	summary core.LoanSummary

	Search             string
	InterestTypeFilter string
}

func NewLoansPage(svc LoanService, snap *snapshot.Store, pub *events.Publisher, logger *applog.Logger) *LoansPage {
	return &LoansPage{
		svc:  svc,
		snap: snap,
		pub:  pub,
		log:  logger.WithComponent(applog.ComponentPages),
	}
}

func (p *LoansPage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *LoansPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	var (
		list    []core.Loan
		summary core.LoanSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = p.svc.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = p.svc.Summary(gctx)
		return err
	})
	err := g.Wait()

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		p.log.Debug("Discarding stale load result",
			applog.FieldEntity, snapshot.EntityLoans, applog.FieldGeneration, gen)
		return nil
	}
	p.loading = false
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.loans = list
	p.summary = summary
	p.mu.Unlock()

	if serr := p.snap.Save(ctx, snapshot.EntityLoans, list); serr != nil {
		p.log.Warn("Snapshot save failed",
			applog.FieldEntity, snapshot.EntityLoans, applog.FieldError, serr.Error())
	}
	return nil
}

func (p *LoansPage) RestoreSnapshot(ctx context.Context) (time.Time, error) {
	var list []core.Loan
	fetchedAt, err := p.snap.Load(ctx, snapshot.EntityLoans, &list)
	if err != nil {
		return time.Time{}, err
	}
	p.mu.Lock()
	p.loans = list
	p.mu.Unlock()
	return fetchedAt, nil
}

func (p *LoansPage) Loans() []core.Loan {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Loan, len(p.loans))
	copy(out, p.loans)
	return out
}

func (p *LoansPage) Summary() core.LoanSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

func (p *LoansPage) Filtered() []core.Loan {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]core.Loan, 0, len(p.loans))
	for _, l := range p.loans {
		if !matches(p.Search, l.Name) {
			continue
		}
		if p.InterestTypeFilter != "" && string(l.InterestType) != p.InterestTypeFilter {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (p *LoansPage) BalanceByInterestType() []core.NameAmount {
	return core.LoanBalanceByInterestType(p.Filtered())
}

func (p *LoansPage) Create(ctx context.Context, l core.Loan) (core.Loan, error) {
	created, err := p.svc.Create(ctx, l)
	if err != nil {
		return core.Loan{}, err
	}
	p.mu.Lock()
	p.loans = append(p.loans, created)
	p.mu.Unlock()
	p.publish(ctx, events.ActionCreated, created.ID)
	return created, nil
}

func (p *LoansPage) ApplyUpdate(l core.Loan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.loans {
		if p.loans[i].ID == l.ID {
			p.loans[i] = l
			break
		}
	}
}

func (p *LoansPage) ApplyDelete(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.loans {
		if p.loans[i].ID == id {
			p.loans = append(p.loans[:i], p.loans[i+1:]...)
			break
		}
	}
}

func (p *LoansPage) publish(ctx context.Context, action events.Action, id int64) {
	if err := p.pub.Publish(ctx, events.NewEvent(snapshot.EntityLoans, action, id)); err != nil {
		p.log.Warn("Event publish failed",
			applog.FieldEntity, snapshot.EntityLoans,
			applog.FieldEntityID, id,
			applog.FieldError, err.Error())
	}
}
