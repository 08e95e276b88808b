// Package ratelimit paces outbound provider calls: every provider name
// gets a process-wide minimum interval between consecutive calls,
// regardless of which ticker or caller triggered them.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum spacing between calls per provider name.
//
// The clock and sleep functions are injectable so tests can assert
// spacing behavior without real delays.
type Pacer struct {
	mu        sync.Mutex
	intervals map[string]time.Duration
	last      map[string]time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer builds a Pacer from a provider-name -> minimum-interval map.
// Providers absent from the map are never delayed.
func NewPacer(intervals map[string]time.Duration) *Pacer {
	p := &Pacer{
		intervals: make(map[string]time.Duration, len(intervals)),
		last:      make(map[string]time.Time, len(intervals)),
		now:       time.Now,
		sleep:     sleepContext,
	}
	for name, d := range intervals {
		if d > 0 {
			p.intervals[name] = d
		}
	}
	return p
}

// Wait blocks until the provider's minimum interval has elapsed since its
// previous call, or returns early when the context is canceled. On a nil
// error the call slot is claimed: the provider's last-call time is
// advanced before Wait returns.
func (p *Pacer) Wait(ctx context.Context, name string) error {
	interval, ok := p.intervals[name]
	if !ok {
		return ctx.Err()
	}

	p.mu.Lock()
	now := p.now()
	wait := interval - now.Sub(p.last[name])
	if wait <= 0 {
		p.last[name] = now
		p.mu.Unlock()
		return ctx.Err()
	}
	// Claim the slot before sleeping so concurrent callers queue behind
	// this call instead of racing for the same slot.
	p.last[name] = now.Add(wait)
	p.mu.Unlock()

	return p.sleep(ctx, wait)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
