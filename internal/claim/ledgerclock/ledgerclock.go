// Package ledgerclock estimates when the next ledger will close from recently
// observed closes.
package ledgerclock

import (
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

const (
	// DefaultInterval is assumed until two closes have been observed.
	DefaultInterval = 5 * time.Second
	// DefaultHistory is the number of close intervals averaged when none is configured.
	DefaultHistory = 10
)

// LedgerClock keeps a bounded history of ledger closes.
type LedgerClock struct {
	mu       sync.RWMutex
	capacity int
	fallback time.Duration
	now      func() time.Time
	samples  []model.LedgerSnapshot
}

// New returns a LedgerClock averaging the last history close intervals, which takes
// history+1 snapshots. now supplies the wall clock for estimates made before any
// close was observed.
func New(history int, now func() time.Time) *LedgerClock {
	if history < 1 {
		history = DefaultHistory
	}
	if now == nil {
		now = time.Now
	}
	return &LedgerClock{
		capacity: history + 1,
		fallback: DefaultInterval,
		now:      now,
		samples:  make([]model.LedgerSnapshot, 0, history+1),
	}
}

// Observe records a ledger close. Snapshots whose sequence does not advance past the
// newest sample are ignored. It reports whether the snapshot was kept.
func (c *LedgerClock) Observe(s model.LedgerSnapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := len(c.samples); n > 0 {
		last := c.samples[n-1]
		if s.Sequence <= last.Sequence || s.ClosedAt.Before(last.ClosedAt) {
			return false
		}
	}
	if len(c.samples) == c.capacity {
		copy(c.samples, c.samples[1:])
		c.samples = c.samples[:len(c.samples)-1]
	}
	c.samples = append(c.samples, s)
	return true
}

// ObserveAll records snapshots oldest first, regardless of input order.
func (c *LedgerClock) ObserveAll(snapshots []model.LedgerSnapshot) int {
	sorted := append([]model.LedgerSnapshot(nil), snapshots...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sequence < sorted[j].Sequence })
	kept := 0
	for _, s := range sorted {
		if c.Observe(s) {
			kept++
		}
	}
	return kept
}

// AverageInterval returns the mean time per ledger across retained samples.
func (c *LedgerClock) AverageInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.averageLocked()
}

func (c *LedgerClock) averageLocked() time.Duration {
	if len(c.samples) < 2 {
		return c.fallback
	}
	first, last := c.samples[0], c.samples[len(c.samples)-1]
	ledgers := last.Sequence - first.Sequence
	elapsed := last.ClosedAt.Sub(first.ClosedAt)
	if ledgers == 0 || elapsed <= 0 {
		return c.fallback
	}
	return elapsed / time.Duration(ledgers)
}

// EstimateNextClose predicts the close time of the ledger after the newest sample.
func (c *LedgerClock) EstimateNextClose() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.samples) == 0 {
		return c.now().Add(c.fallback)
	}
	return c.samples[len(c.samples)-1].ClosedAt.Add(c.averageLocked())
}

// EstimateCloseAfter predicts the first ledger close at or after t and the number of
// ledgers between the newest sample and that close.
func (c *LedgerClock) EstimateCloseAfter(t time.Time) (time.Time, uint32) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	interval := c.averageLocked()
	var base time.Time
	if len(c.samples) == 0 {
		base = c.now()
	} else {
		base = c.samples[len(c.samples)-1].ClosedAt
	}
	if !t.After(base) {
		return base.Add(interval), 1
	}
	n := (t.Sub(base) + interval - 1) / interval
	return base.Add(n * interval), uint32(n)
}
