package clock

import (
	"context"
	"sync"
	"time"
)

// Fake is a Clock whose Sleep advances virtual time immediately. Every requested
// suspension is recorded so callers can assert on scheduling decisions.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
	onTick func(now time.Time)
}

// NewFake returns a Fake clock set to start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// OnSleep registers a hook invoked with the new virtual time after every Sleep.
func (f *Fake) OnSleep(fn func(now time.Time)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onTick = fn
}

// Now returns the current virtual time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves virtual time forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Sleep records d and advances virtual time by it unless ctx is already done.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	if d < 0 {
		d = 0
	}
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	now, hook := f.now, f.onTick
	f.mu.Unlock()

	if hook != nil {
		hook(now)
	}
	return ctx.Err()
}

// Slept returns the total virtual time spent sleeping.
func (f *Fake) Slept() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total time.Duration
	for _, d := range f.sleeps {
		total += d
	}
	return total
}

// Sleeps returns a copy of every recorded suspension.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}
