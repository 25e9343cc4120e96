// Package watcher discovers locked resources claimable by one account and resolves
// the instant each of them unlocks.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/clock"
	"go.uber.org/zap"
)

// Skip reasons reported to metrics.
const (
	SkipNoClaimant = "no_claimant"
	SkipMalformed  = "malformed"
	SkipUntimed    = "untimed"
	SkipEmpty      = "empty_window"
	SkipExpired    = "expired"
)

var (
	// ErrExpired is returned by Lookup when the claim window already closed.
	ErrExpired = errors.New("claim window closed")
	// ErrNotClaimable is returned by Lookup when the resource can not be claimed on
	// a timer by the watched account.
	ErrNotClaimable = errors.New("resource not claimable on a timer")
)

type resolution struct {
	unlockAt time.Time
	until    time.Time
}

// Watcher polls the ledger for the claimant's locked resources.
type Watcher struct {
	logger   *zap.Logger
	reader   LedgerReader
	metrics  Metrics
	clock    clock.Clock
	claimant string

	mu        sync.Mutex
	cache     map[string]resolution
	firstSeen map[string]time.Time
}

// New builds a Watcher for claimant.
func New(reader LedgerReader, metrics Metrics, c clock.Clock, claimant string, logger *zap.Logger) (*Watcher, error) {
	if reader == nil {
		return nil, errors.New("ledger reader is required")
	}
	if metrics == nil {
		return nil, errors.New("watcher metrics is required")
	}
	if claimant == "" {
		return nil, errors.New("claimant is required")
	}
	if c == nil {
		c = clock.Real{}
	}
	return &Watcher{
		logger:    logger.Named("watcher").With(zap.String("claimant", claimant)),
		reader:    reader,
		metrics:   metrics,
		clock:     c,
		claimant:  claimant,
		cache:     make(map[string]resolution),
		firstSeen: make(map[string]time.Time),
	}, nil
}

// Poll returns every timed, still claimable resource ordered by unlock instant.
func (w *Watcher) Poll(ctx context.Context) ([]model.LockedResource, error) {
	started := time.Now()
	raw, err := w.reader.QueryLockedResources(ctx, w.claimant)
	w.metrics.ObservePoll(err, len(raw), started)
	if err != nil {
		return nil, fmt.Errorf("query locked resources: %w", err)
	}

	now := w.clock.Now()
	seen := make(map[string]struct{}, len(raw))
	out := make([]model.LockedResource, 0, len(raw))
	for _, r := range raw {
		seen[r.ID] = struct{}{}
		resolved, reason := w.resolve(r, now)
		if reason != "" {
			w.metrics.ObserveSkipped(reason)
			continue
		}
		out = append(out, resolved)
	}
	w.forgetMissing(seen)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UnlockAt.Equal(out[j].UnlockAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UnlockAt.Before(out[j].UnlockAt)
	})
	return out, nil
}

// Lookup re-reads a single resource. It returns model.ErrResourceNotFound once the
// resource has been claimed by anyone, ErrExpired once its window has closed.
func (w *Watcher) Lookup(ctx context.Context, id string) (model.LockedResource, error) {
	r, err := w.reader.LookupLockedResource(ctx, id)
	if err != nil {
		return model.LockedResource{}, fmt.Errorf("lookup locked resource %s: %w", id, err)
	}
	if r == nil {
		return model.LockedResource{}, model.ErrResourceNotFound
	}
	resolved, reason := w.resolve(*r, w.clock.Now())
	switch reason {
	case "":
		return resolved, nil
	case SkipExpired:
		return model.LockedResource{}, ErrExpired
	default:
		return model.LockedResource{}, fmt.Errorf("%w: %s", ErrNotClaimable, reason)
	}
}

func (w *Watcher) resolve(r model.LockedResource, now time.Time) (model.LockedResource, string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	res, ok := w.cache[r.ID]
	if ok && !res.until.IsZero() && !now.Before(res.until) {
		// Another OR branch may still be open.
		ok = false
	}
	if !ok {
		entry, found := r.ClaimantFor(w.claimant)
		if !found {
			return r, SkipNoClaimant
		}
		win, err := resolvePredicate(entry.Predicate, r.CreatedAt, now)
		if err != nil {
			w.logger.Warn("dropping malformed predicate",
				zap.String("resource_id", r.ID),
				zap.String("category", string(model.CategoryInvalid)),
				zap.Error(err),
			)
			return r, SkipMalformed
		}
		switch {
		case win.never:
			return r, SkipEmpty
		case !win.timed:
			return r, SkipUntimed
		}

		res = resolution{unlockAt: win.from, until: win.until}
		if res.unlockAt.IsZero() {
			first, seen := w.firstSeen[r.ID]
			if !seen {
				first = now
				w.firstSeen[r.ID] = first
			}
			res.unlockAt = first
		}
		w.cache[r.ID] = res
		w.logger.Debug("resolved unlock instant",
			zap.String("resource_id", r.ID),
			zap.Time("unlock_at", res.unlockAt),
			zap.Time("until", res.until),
		)
	}

	if !res.until.IsZero() && !now.Before(res.until) {
		return r, SkipExpired
	}
	r.UnlockAt = res.unlockAt
	r.ClaimableUntil = res.until
	return r, ""
}

func (w *Watcher) forgetMissing(seen map[string]struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id := range w.cache {
		if _, ok := seen[id]; !ok {
			delete(w.cache, id)
			delete(w.firstSeen, id)
		}
	}
}
