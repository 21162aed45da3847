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

// SIPsPage owns the systematic investment plan list and its summary.
type SIPsPage struct {
	mu   sync.Mutex
	svc  SIPService
	snap *snapshot.Store
	pub  *events.Publisher
	log  *applog.Logger

	gen     uint64
	loading bool

	sips    []core.SIP
	summary core.SIPSummary

	Search string
}

func NewSIPsPage(svc SIPService, snap *snapshot.Store, pub *events.Publisher, logger *applog.Logger) *SIPsPage {
	return &SIPsPage{
		svc:  svc,
		snap: snap,
		pub:  pub,
		log:  logger.WithComponent(applog.ComponentPages),
	}
}

func (p *SIPsPage) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *SIPsPage) Load(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.loading = true
	p.mu.Unlock()

	var (
		list    []core.SIP
		summary core.SIPSummary
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
			applog.FieldEntity, snapshot.EntitySIPs, applog.FieldGeneration, gen)
		return nil
	}
	p.loading = false
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.sips = list
	p.summary = summary
	p.mu.Unlock()

	if serr := p.snap.Save(ctx, snapshot.EntitySIPs, list); serr != nil {
		p.log.Warn("Snapshot save failed",
			applog.FieldEntity, snapshot.EntitySIPs, applog.FieldError, serr.Error())
	}
	return nil
}

func (p *SIPsPage) RestoreSnapshot(ctx context.Context) (time.Time, error) {
	var list []core.SIP
	fetchedAt, err := p.snap.Load(ctx, snapshot.EntitySIPs, &list)
	if err != nil {
		return time.Time{}, err
	}
	p.mu.Lock()
	p.sips = list
	p.mu.Unlock()
	return fetchedAt, nil
}

func (p *SIPsPage) SIPs() []core.SIP {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]core.SIP, len(p.sips))
	copy(out, p.sips)
	return out
}

func (p *SIPsPage) Summary() core.SIPSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.summary
}

func (p *SIPsPage) Filtered() []core.SIP {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]core.SIP, 0, len(p.sips))
	for _, s := range p.sips {
		if !matches(p.Search, s.Name, s.SchemeCode) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (p *SIPsPage) MonthlyByName() []core.NameAmount {
	return core.SIPMonthlyByName(p.Filtered())
}

func (p *SIPsPage) Create(ctx context.Context, s core.SIP) (core.SIP, error) {
	created, err := p.svc.Create(ctx, s)
	if err != nil {
		return core.SIP{}, err
	}
	p.mu.Lock()
	p.sips = append(p.sips, created)
	p.mu.Unlock()
	p.publish(ctx, events.ActionCreated, created.ID)
	return created, nil
}

func (p *SIPsPage) ApplyUpdate(s core.SIP) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.sips {
		if p.sips[i].ID == s.ID {
			p.sips[i] = s
			break
		}
	}
}

func (p *SIPsPage) ApplyDelete(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.sips {
		if p.sips[i].ID == id {
			p.sips = append(p.sips[:i], p.sips[i+1:]...)
			break
		}
	}
}

func (p *SIPsPage) publish(ctx context.Context, action events.Action, id int64) {
	if err := p.pub.Publish(ctx, events.NewEvent(snapshot.EntitySIPs, action, id)); err != nil {
		p.log.Warn("Event publish failed",
			applog.FieldEntity, snapshot.EntitySIPs,
			applog.FieldEntityID, id,
			applog.FieldError, err.Error())
	}
}
