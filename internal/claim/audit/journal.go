// Package audit records submission attempts and cycle outcomes.
package audit

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

// Journal keeps the most recent outcomes in memory for the status API.
type Journal struct {
	mu   sync.RWMutex
	ring []model.Outcome
	next int
	full bool
}

// NewJournal returns a Journal holding up to size outcomes.
func NewJournal(size int) *Journal {
	if size < 1 {
		size = 1
	}
	return &Journal{ring: make([]model.Outcome, size)}
}

// RecordOutcome stores outcome, evicting the oldest one when full.
func (j *Journal) RecordOutcome(_ context.Context, outcome model.Outcome) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.ring[j.next] = outcome
	j.next = (j.next + 1) % len(j.ring)
	if j.next == 0 {
		j.full = true
	}
}

// List returns up to limit outcomes, newest first. limit <= 0 returns all of them.
func (j *Journal) List(limit int) []model.Outcome {
	j.mu.RLock()
	defer j.mu.RUnlock()

	n := j.next
	if j.full {
		n = len(j.ring)
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.Outcome, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (j.next - i + len(j.ring)) % len(j.ring)
		out = append(out, j.ring[idx])
	}
	return out
}

// Get returns the newest outcome recorded for resourceID.
func (j *Journal) Get(resourceID string) (model.Outcome, bool) {
	for _, o := range j.List(0) {
		if o.ResourceID == resourceID {
			return o, true
		}
	}
	return model.Outcome{}, false
}

// Tee fans an outcome out to every recorder in order.
type Tee []OutcomeRecorder

func (t Tee) RecordOutcome(ctx context.Context, outcome model.Outcome) {
	for _, r := range t {
		r.RecordOutcome(ctx, outcome)
	}
}
