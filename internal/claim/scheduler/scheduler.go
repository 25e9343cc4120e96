// Package scheduler runs scheduling cycles: it polls for locked resources, waits for
// each unlock and hands signed candidates to the submission engine.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/txfactory"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/watcher"
	"github.com/goodnatureofminers/unlockclaimer/internal/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config tunes cycle pacing.
type Config struct {
	Network         model.Network
	Claimant        string
	EarlyOffset     time.Duration
	GracePeriod     time.Duration
	Lookahead       time.Duration
	RecheckInterval time.Duration
	IdleInterval    time.Duration
	LedgerHistory   int
}

// Dependencies groups the collaborators of a Scheduler.
type Dependencies struct {
	Watcher     Watcher
	Ledger      LedgerReader
	LedgerClock LedgerClock
	Fees        FeeEstimator
	Factory     Factory
	Engine      Engine
	Recorder    Recorder
	Metrics     Metrics
	Clock       clock.Clock
}

// Scheduler is the single control flow for one claimant.
type Scheduler struct {
	logger      *zap.Logger
	watcher     Watcher
	ledger      LedgerReader
	ledgerClock LedgerClock
	fees        FeeEstimator
	factory     Factory
	engine      Engine
	recorder    Recorder
	metrics     Metrics
	clock       clock.Clock
	cfg         Config

	mu      sync.Mutex
	settled map[string]model.ErrorCategory
}

// New validates deps and cfg and returns a Scheduler.
func New(deps Dependencies, cfg Config, logger *zap.Logger) (*Scheduler, error) {
	switch {
	case deps.Watcher == nil:
		return nil, errors.New("watcher is required")
	case deps.Ledger == nil:
		return nil, errors.New("ledger reader is required")
	case deps.LedgerClock == nil:
		return nil, errors.New("ledger clock is required")
	case deps.Fees == nil:
		return nil, errors.New("fee estimator is required")
	case deps.Factory == nil:
		return nil, errors.New("transaction factory is required")
	case deps.Engine == nil:
		return nil, errors.New("submission engine is required")
	case deps.Metrics == nil:
		return nil, errors.New("scheduler metrics is required")
	case cfg.Claimant == "":
		return nil, errors.New("claimant is required")
	case cfg.RecheckInterval <= 0:
		return nil, errors.New("recheck interval must be positive")
	case cfg.IdleInterval <= 0:
		return nil, errors.New("idle interval must be positive")
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Recorder == nil {
		deps.Recorder = nopRecorder{}
	}
	if cfg.LedgerHistory <= 0 {
		cfg.LedgerHistory = 10
	}
	return &Scheduler{
		logger: logger.Named("scheduler").With(
			zap.String("claimant", cfg.Claimant),
			zap.String("network", string(cfg.Network)),
		),
		watcher:     deps.Watcher,
		ledger:      deps.Ledger,
		ledgerClock: deps.LedgerClock,
		fees:        deps.Fees,
		factory:     deps.Factory,
		engine:      deps.Engine,
		recorder:    deps.Recorder,
		metrics:     deps.Metrics,
		clock:       deps.Clock,
		cfg:         cfg,
		settled:     make(map[string]model.ErrorCategory),
	}, nil
}

// Run executes cycles until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("cycle failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.IdleInterval))
			if sleepErr := s.clock.Sleep(ctx, s.cfg.IdleInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Scheduler) run(ctx context.Context) (err error) {
	started := time.Now()
	due := 0
	defer func() {
		s.metrics.ObserveCycle(err, due, started)
	}()

	cycleID := uuid.NewString()
	s.observeLedgers(ctx, s.cfg.LedgerHistory)

	resources, err := s.watcher.Poll(ctx)
	if err != nil {
		return err
	}

	pending, missed := s.dueResources(resources, s.clock.Now())
	for _, r := range missed {
		s.expire(ctx, cycleID, r)
	}
	due = len(pending)
	if due == 0 {
		s.logger.Debug("nothing due; sleeping", zap.Int("watched", len(resources)), zap.Duration("sleep", s.cfg.IdleInterval))
		return s.clock.Sleep(ctx, s.cfg.IdleInterval)
	}

	s.logger.Info("processing due resources", zap.String("cycle_id", cycleID), zap.Int("due", due))
	confirmed := 0
	for _, r := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if s.process(ctx, cycleID, r) == model.StatusConfirmed {
			confirmed++
		}
	}
	if confirmed == 0 {
		s.logger.Debug("no claim confirmed; sleeping", zap.Int("due", due), zap.Duration("sleep", s.cfg.IdleInterval))
		return s.clock.Sleep(ctx, s.cfg.IdleInterval)
	}
	return nil
}

// dueResources splits unsettled resources into those triggering within the
// lookahead and those whose validity window already ended.
func (s *Scheduler) dueResources(resources []model.LockedResource, now time.Time) (due, missed []model.LockedResource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due = make([]model.LockedResource, 0, len(resources))
	for _, r := range resources {
		if _, done := s.settled[r.ID]; done {
			continue
		}
		if s.cfg.GracePeriod > 0 && !now.Before(r.UnlockAt.Add(s.cfg.GracePeriod)) {
			missed = append(missed, r)
			continue
		}
		if s.trigger(r).Sub(now) <= s.cfg.Lookahead {
			due = append(due, r)
		}
	}
	return due, missed
}

func (s *Scheduler) trigger(r model.LockedResource) time.Time {
	return r.UnlockAt.Add(-s.cfg.EarlyOffset)
}

func (s *Scheduler) newOutcome(cycleID string, r model.LockedResource) model.Outcome {
	return model.Outcome{
		CycleID:    cycleID,
		Network:    s.cfg.Network,
		ResourceID: r.ID,
		UnlockAt:   r.UnlockAt,
		StartedAt:  s.clock.Now(),
	}
}

// finish settles, records and logs outcome.
func (s *Scheduler) finish(ctx context.Context, logger *zap.Logger, outcome *model.Outcome) {
	outcome.FinishedAt = s.clock.Now()
	s.settle(*outcome)
	s.metrics.ObserveOutcome(outcome.Status, outcome.Category)
	s.recorder.RecordOutcome(context.WithoutCancel(ctx), *outcome)
	fields := []zap.Field{
		zap.String("status", string(outcome.Status)),
		zap.Int("attempt", outcome.Attempts),
		zap.String("category", string(outcome.Category)),
		zap.Int64("fee", outcome.FinalFee),
		zap.String("tx_hash", outcome.TransactionHash),
	}
	if outcome.Status == model.StatusConfirmed {
		logger.Info("claim confirmed", fields...)
	} else {
		logger.Warn("claim not confirmed", append(fields, zap.String("error", outcome.Error))...)
	}
}

// expire records a resource whose transaction validity window has already ended.
func (s *Scheduler) expire(ctx context.Context, cycleID string, r model.LockedResource) {
	logger := s.logger.With(zap.String("resource_id", r.ID), zap.Time("unlock_at", r.UnlockAt))
	outcome := s.newOutcome(cycleID, r)
	outcome.FailAs(model.StatusRejected, model.CategoryExpired,
		fmt.Errorf("validity window closed at %s", r.UnlockAt.Add(s.cfg.GracePeriod).Format(time.RFC3339)))
	s.finish(ctx, logger, &outcome)
}

// process drives one resource to an outcome and returns its status. Failures are
// recorded, never returned.
func (s *Scheduler) process(ctx context.Context, cycleID string, r model.LockedResource) (status model.Status) {
	logger := s.logger.With(zap.String("resource_id", r.ID), zap.Time("unlock_at", r.UnlockAt))
	outcome := s.newOutcome(cycleID, r)
	defer func() {
		s.finish(ctx, logger, &outcome)
		status = outcome.Status
	}()

	if err := s.waitForTrigger(ctx, r); err != nil {
		outcome.Fail(model.StatusCanceled, err)
		return
	}
	s.metrics.ObserveTriggerLateness(s.clock.Now().Sub(s.trigger(r)))

	current, err := s.watcher.Lookup(ctx, r.ID)
	switch {
	case err == nil:
		r = current
	case errors.Is(err, model.ErrResourceNotFound):
		outcome.FailAs(model.StatusRejected, model.CategoryAlreadyClaimed, err)
		return
	case errors.Is(err, watcher.ErrExpired):
		outcome.FailAs(model.StatusRejected, model.CategoryExpired, err)
		return
	case errors.Is(err, watcher.ErrNotClaimable):
		outcome.FailAs(model.StatusRejected, model.CategoryInvalid, err)
		return
	default:
		logger.Warn("re-check failed, using polled resource", zap.Error(err))
	}

	seq, err := s.ledger.LoadAccountSequence(ctx, s.cfg.Claimant)
	if err != nil {
		outcome.Fail(model.StatusExhausted, err)
		return
	}

	stats, err := s.ledger.FeeStatistics(ctx)
	if err != nil {
		logger.Warn("fee statistics unavailable, bidding the floor", zap.Error(err))
		stats = nil
	}
	quote := s.fees.Quote(stats, 0)

	c, err := s.factory.Build(txfactory.BuildRequest{Resource: r, Sequence: seq, Fee: quote.Bid})
	if err != nil {
		outcome.Fail(model.StatusRejected, err)
		return
	}
	predictedClose, predictedLedger := s.ledgerClock.EstimateCloseAfter(s.trigger(r))
	logger.Debug("candidate ready",
		zap.String("tx_hash", c.Hash),
		zap.Int64("fee", quote.Bid),
		zap.Time("next_close", s.ledgerClock.EstimateNextClose()),
		zap.Time("predicted_close", predictedClose),
		zap.Uint32("ledgers_ahead", predictedLedger),
	)

	final, err := s.engine.Submit(ctx, cycleID, c)
	if final != nil {
		outcome.Status = final.Status
		if n := len(final.Attempts); n > 0 {
			outcome.Attempts = final.Attempts[n-1].Attempt
		}
		outcome.FinalFee = final.Fee()
		outcome.TransactionHash = final.Hash
		outcome.History = final.Attempts
	}
	if err != nil {
		outcome.Category = model.Categorize(err)
		outcome.Error = err.Error()
		if final == nil {
			outcome.Status = model.StatusRejected
		}
	}
}

// waitForTrigger suspends until the resource's trigger instant in steps of the
// recheck interval, folding new ledger closes into the ledger clock between steps.
func (s *Scheduler) waitForTrigger(ctx context.Context, r model.LockedResource) error {
	trigger := s.trigger(r)
	for {
		remaining := trigger.Sub(s.clock.Now())
		if remaining <= 0 {
			return ctx.Err()
		}
		step := s.cfg.RecheckInterval
		if remaining < step {
			step = remaining
		}
		if err := s.clock.Sleep(ctx, step); err != nil {
			return err
		}
		s.observeLedgers(ctx, 1)
	}
}

func (s *Scheduler) observeLedgers(ctx context.Context, limit int) {
	snapshots, err := s.ledger.LatestBlocks(ctx, limit)
	if err != nil {
		s.logger.Debug("latest ledgers unavailable", zap.Error(err))
		return
	}
	if kept := s.ledgerClock.ObserveAll(snapshots); kept > 0 {
		s.logger.Debug("observed ledger closes",
			zap.Int("new", kept),
			zap.Duration("interval", s.ledgerClock.AverageInterval()),
		)
	}
}

// settle remembers resources that must not be retried in later cycles.
func (s *Scheduler) settle(o model.Outcome) {
	switch {
	case o.Status == model.StatusConfirmed:
	case o.Status == model.StatusRejected &&
		(o.Category == model.CategoryInvalid || o.Category == model.CategoryBuild || o.Category == model.CategoryExpired):
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settled[o.ResourceID] = o.Category
}

type nopRecorder struct{}

func (nopRecorder) RecordOutcome(context.Context, model.Outcome) {}
