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

// InvestmentsPage owns the investment holdings list and portfolio summary.
type InvestmentsPage struct {
	mu   sync.Mutex
	svc  InvestmentService
	snap *snapshot.Store
	pub  *events.Publisher
	log  *applog.Logger

	gen     uint64
	loading bool

	investments []core.Investment
	summary     core.InvestmentSummary

	Search     string
	TypeFilter string
}

func NewInvestmentsPage(svc InvestmentService, snap *snapshot.Store, pub *events.Publisher, logger *applog.Logger) *InvestmentsPage {
	return &InvestmentsPage{
		svc:  svc,
		snap: snap,
		pub:  pub,
		log:  logger.WithComponent(applog.ComponentPages),
	}
}

func (p *InvestmentsPage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *InvestmentsPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	var (
		list    []core.Investment
		summary core.InvestmentSummary
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
			applog.FieldEntity, snapshot.EntityInvestments, applog.FieldGeneration, gen)
		return nil
	}
	p.loading = false
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.investments = list
	p.summary = summary
	p.mu.Unlock()

	if serr := p.snap.Save(ctx, snapshot.EntityInvestments, list); serr != nil {
		p.log.Warn("Snapshot save failed",
			applog.FieldEntity, snapshot.EntityInvestments, applog.FieldError, serr.Error())
	}
	return nil
}

func (p *InvestmentsPage) RestoreSnapshot(ctx context.Context) (time.Time, error) {
	var list []core.Investment
	fetchedAt, err := p.snap.Load(ctx, snapshot.EntityInvestments, &list)
	if err != nil {
		return time.Time{}, err
	}
	p.mu.Lock()
	p.investments = list
	p.mu.Unlock()
	return fetchedAt, nil
}

func (p *InvestmentsPage) Investments() []core.Investment {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.Investment, len(p.investments))
	copy(out, p.investments)
	return out
}

func (p *InvestmentsPage) Summary() core.InvestmentSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

func (p *InvestmentsPage) Filtered() []core.Investment {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]core.Investment, 0, len(p.investments))
	for _, inv := range p.investments {
		if !matches(p.Search, inv.Name, inv.Symbol, string(inv.Type)) {
			continue
		}
		if p.TypeFilter != "" && string(inv.Type) != p.TypeFilter {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func (p *InvestmentsPage) ValueByType() []core.NameAmount {
	return core.InvestmentValueByType(p.Filtered())
}

func (p *InvestmentsPage) Create(ctx context.Context, inv core.Investment) (core.Investment, error) {
	created, err := p.svc.Create(ctx, inv)
	if err != nil {
		return core.Investment{}, err
	}
	p.mu.Lock()
	p.investments = append(p.investments, created)
	p.mu.Unlock()
	p.publish(ctx, events.ActionCreated, created.ID)
	return created, nil
}

func (p *InvestmentsPage) ApplyUpdate(inv core.Investment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.investments {
		if p.investments[i].ID == inv.ID {
			p.investments[i] = inv
			break
		}
	}
}

func (p *InvestmentsPage) ApplyDelete(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.investments {
		if p.investments[i].ID == id {
			p.investments = append(p.investments[:i], p.investments[i+1:]...)
			break
		}
	}
}

func (p *InvestmentsPage) publish(ctx context.Context, action events.Action, id int64) {
	if err := p.pub.Publish(ctx, events.NewEvent(snapshot.EntityInvestments, action, id)); err != nil {
		p.log.Warn("Event publish failed",
			applog.FieldEntity, snapshot.EntityInvestments,
			applog.FieldEntityID, id,
			applog.FieldError, err.Error())
	}
}
