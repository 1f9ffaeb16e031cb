package scout

import (
	"context"
	"log"
	"time"
)

// Poller drives scan cycles: one on startup, one per tick, plus operator
// /runall requests squeezed in between.
type Poller struct {
	Runner   *Runner
	Interval time.Duration

	runNow chan Options
}

func NewPoller(runner *Runner, interval time.Duration) *Poller {
	return &Poller{
		Runner:   runner,
		Interval: interval,
		runNow:   make(chan Options, 1),
	}
}

// RequestRun queues an immediate scan. Non-blocking: a request while one
// is already queued is folded into it.
func (p *Poller) RequestRun(opts Options) {
	select {
	case p.runNow <- opts:
	default:
	}
}

func (p *Poller) Run(ctx context.Context) error {
	p.cycle(ctx, Options{})

	t := time.NewTicker(p.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case opts := <-p.runNow:
			p.cycle(ctx, opts)
		case <-t.C:
			p.cycle(ctx, Options{})
		}
	}
}

func (p *Poller) cycle(ctx context.Context, opts Options) {
	if err := p.Runner.RunCycle(ctx, opts); err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("[scout] cycle error: %v", err)
	}
}
