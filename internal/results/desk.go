// Package results runs the simulated results lookup: a request is validated,
// held pending for a fixed delay, then resolved against the record source.
// A visitor has at most one lookup pending; further attempts are refused
// while it is in flight rather than queued.
package results

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/faithss/website/internal/directory"
	"github.com/faithss/website/internal/models"
)

// ErrBusy is returned when the visitor already has a lookup pending.
var ErrBusy = errors.New("results: lookup already in progress")

// BusyText is shown in place of the search button while a lookup is pending.
const BusyText = "Searching..."

// DefaultDelay is the artificial lookup latency.
const DefaultDelay = time.Second

type Source interface {
	Results(ctx context.Context) ([]models.Result, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(ctx context.Context) ([]models.Result, error)

func (fn SourceFunc) Results(ctx context.Context) ([]models.Result, error) { return fn(ctx) }

type Desk struct {
	src    Source
	policy directory.Policy
	delay  time.Duration

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewDesk(src Source, policy directory.Policy, delay time.Duration) *Desk {
	if delay < 0 {
		delay = 0
	}
	return &Desk{src: src, policy: policy, delay: delay, pending: make(map[string]struct{})}
}

func (d *Desk) Policy() directory.Policy { return d.policy }

// Busy reports whether visitor has a lookup pending.
func (d *Desk) Busy(visitor string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[visitor]
	return ok
}

// Search validates id and pin, then resolves them after the desk's delay.
// Malformed input is rejected at once and never enters the pending state.
func (d *Desk) Search(ctx context.Context, visitor, id, pin string) (models.Result, error) {
	if err := d.policy.Check(id, pin); err != nil {
		return models.Result{}, err
	}
	if !d.begin(visitor) {
		return models.Result{}, ErrBusy
	}
	defer d.end(visitor)

	if d.delay > 0 {
		t := time.NewTimer(d.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.Result{}, ctx.Err()
		case <-t.C:
		}
	}
	return d.Find(ctx, id, pin)
}

// Find resolves id and pin immediately. The print view uses it to rebuild a
// report that was already found once.
func (d *Desk) Find(ctx context.Context, id, pin string) (models.Result, error) {
	recs, err := d.src.Results(ctx)
	if err != nil {
		return models.Result{}, err
	}
	return d.policy.Lookup(recs, id, pin)
}

func (d *Desk) begin(visitor string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.pending[visitor]; ok {
		return false
	}
	d.pending[visitor] = struct{}{}
	return true
}

func (d *Desk) end(visitor string) {
	d.mu.Lock()
	delete(d.pending, visitor)
	d.mu.Unlock()
}
