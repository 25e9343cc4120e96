// Package submission drives a signed candidate through flooding, fee escalation and
// resubmission until it lands, is rejected or runs out of attempts.
package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config tunes the submission protocol.
type Config struct {
	Network       model.Network
	MaxAttempts   int
	FloodCopies   int
	FloodSpacing  time.Duration
	SubmitTimeout time.Duration
	RetryDelay    time.Duration
}

// Engine submits candidates. One Engine may serve sequential Submit calls; the
// flood step is its only internal concurrency.
type Engine struct {
	logger     *zap.Logger
	submitters []Submitter
	ledger     LedgerReader
	fees       FeeEstimator
	factory    Factory
	recorder   Recorder
	metrics    Metrics
	clock      clock.Clock
	cfg        Config
}

// NewEngine builds an Engine. recorder may be nil.
func NewEngine(
	submitters []Submitter,
	ledger LedgerReader,
	fees FeeEstimator,
	factory Factory,
	recorder Recorder,
	metrics Metrics,
	c clock.Clock,
	cfg Config,
	logger *zap.Logger,
) (*Engine, error) {
	switch {
	case len(submitters) == 0:
		return nil, errors.New("at least one submitter is required")
	case ledger == nil:
		return nil, errors.New("ledger reader is required")
	case fees == nil:
		return nil, errors.New("fee estimator is required")
	case factory == nil:
		return nil, errors.New("transaction factory is required")
	case metrics == nil:
		return nil, errors.New("submission metrics is required")
	case cfg.MaxAttempts < 1:
		return nil, errors.New("max attempts must be at least 1")
	case cfg.SubmitTimeout <= 0:
		return nil, errors.New("submit timeout must be positive")
	}
	if cfg.FloodCopies < 1 {
		cfg.FloodCopies = 1
	}
	if c == nil {
		c = clock.Real{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Engine{
		logger:     logger.Named("engine"),
		submitters: submitters,
		ledger:     ledger,
		fees:       fees,
		factory:    factory,
		recorder:   recorder,
		metrics:    metrics,
		clock:      c,
		cfg:        cfg,
	}, nil
}

// Submit runs c to a terminal status and returns the final candidate. The returned
// error is nil only for StatusConfirmed and otherwise carries the last categorized
// failure.
func (e *Engine) Submit(ctx context.Context, cycleID string, c *model.CandidateTransaction) (*model.CandidateTransaction, error) {
	logger := e.logger.With(zap.String("resource_id", c.ResourceID))
	run := &run{engine: e, cycleID: cycleID, logger: logger}
	e.metrics.ObserveBid(c.Fee())

	c.Status = model.StatusSubmitted
	for attempt := 1; ; attempt++ {
		var err error
		if attempt == 1 {
			err = run.flood(ctx, c, attempt)
		} else {
			err = run.single(ctx, c, attempt)
		}
		category := model.Categorize(err)

		switch {
		case err == nil || category.Included():
			return e.finish(c, model.StatusConfirmed, attempt, nil)

		case ctx.Err() != nil:
			return e.finish(c, model.StatusCanceled, attempt, ctx.Err())

		case category.Terminal():
			if hash, ok := run.reconcile(ctx, c.PriorHashes); ok {
				logger.Info("earlier envelope found on ledger", zap.String("tx_hash", hash))
				c.Hash = hash
				return e.finish(c, model.StatusConfirmed, attempt, nil)
			}
			logger.Warn("candidate rejected",
				zap.Int("attempt", attempt),
				zap.String("category", string(category)),
				zap.Error(err),
			)
			return e.finish(c, model.StatusRejected, attempt, err)
		}

		if attempt >= e.cfg.MaxAttempts {
			if hash, ok := run.reconcile(ctx, c.Hashes()); ok {
				c.Hash = hash
				return e.finish(c, model.StatusConfirmed, attempt, nil)
			}
			logger.Warn("submission attempts exhausted",
				zap.Int("attempt", attempt),
				zap.String("category", string(category)),
				zap.Error(err),
			)
			return e.finish(c, model.StatusExhausted, attempt, fmt.Errorf("exhausted after %d attempts: %w", attempt, err))
		}

		c.Status = model.StatusRetrying
		logger.Info("retrying submission",
			zap.Int("attempt", attempt),
			zap.String("category", string(category)),
			zap.Int64("fee", c.Fee()),
		)
		if err := e.clock.Sleep(ctx, e.cfg.RetryDelay); err != nil {
			return e.finish(c, model.StatusCanceled, attempt, err)
		}

		next, err := run.prepareRetry(ctx, c, category)
		if err != nil {
			if ctx.Err() != nil {
				return e.finish(c, model.StatusCanceled, attempt, ctx.Err())
			}
			return e.finish(c, model.StatusRejected, attempt, err)
		}
		c = next
	}
}

func (e *Engine) finish(c *model.CandidateTransaction, status model.Status, attempts int, err error) (*model.CandidateTransaction, error) {
	c.Status = status
	e.metrics.ObserveResult(status, attempts)
	return c, err
}

// run holds per-candidate state across attempts.
type run struct {
	engine  *Engine
	cycleID string
	logger  *zap.Logger
	cursor  int
}

func (r *run) nextSubmitter() Submitter {
	s := r.engine.submitters[r.cursor%len(r.engine.submitters)]
	r.cursor++
	return s
}

func (r *run) single(ctx context.Context, c *model.CandidateTransaction, attempt int) error {
	rec, err := r.submit(ctx, c, r.nextSubmitter(), attempt, 0)
	c.Attempts = append(c.Attempts, rec)
	return err
}

func (r *run) submit(ctx context.Context, c *model.CandidateTransaction, s Submitter, attempt, copyIndex int) (model.SubmissionAttempt, error) {
	e := r.engine
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.SubmitTimeout)
	defer cancel()

	started := time.Now()
	hash, err := s.Submit(callCtx, c.Payload)
	if err != nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		err = model.NewSubmissionError(model.CategoryTimeout, "", err)
	}
	category := model.Categorize(err)
	e.metrics.ObserveAttempt(s.Endpoint(), category, started)

	if hash == "" {
		hash = c.Hash
	}
	rec := model.SubmissionAttempt{
		ID:              uuid.NewString(),
		CycleID:         r.cycleID,
		Network:         e.cfg.Network,
		ResourceID:      c.ResourceID,
		TransactionHash: hash,
		Endpoint:        s.Endpoint(),
		Attempt:         attempt,
		Copy:            copyIndex,
		Fee:             c.Fee(),
		Outcome:         model.AttemptAccepted,
		Category:        category,
		Code:            model.ResultCode(err),
		Timestamp:       e.clock.Now(),
	}
	fields := []zap.Field{
		zap.Int("attempt", attempt),
		zap.Int("copy", copyIndex),
		zap.String("endpoint", s.Endpoint()),
		zap.String("tx_hash", hash),
		zap.Int64("fee", c.Fee()),
	}
	if err != nil {
		rec.Outcome = model.AttemptFailed
		rec.Error = err.Error()
		r.logger.Warn("submission failed", append(fields, zap.String("category", string(category)), zap.Error(err))...)
	} else {
		r.logger.Info("submission accepted", fields...)
	}
	e.recorder.RecordAttempt(context.WithoutCancel(ctx), rec)
	return rec, err
}

func (r *run) prepareRetry(ctx context.Context, c *model.CandidateTransaction, category model.ErrorCategory) (*model.CandidateTransaction, error) {
	e := r.engine

	statsCtx, cancel := context.WithTimeout(ctx, e.cfg.SubmitTimeout)
	stats, err := e.ledger.FeeStatistics(statsCtx)
	cancel()
	if err != nil {
		r.logger.Warn("fee statistics unavailable, escalating blind", zap.Error(err))
		stats = nil
	}
	quote := e.fees.Escalate(stats, c.Fee())
	e.metrics.ObserveBid(quote.Bid)

	if category == model.CategoryStaleSequence {
		seqCtx, cancel := context.WithTimeout(ctx, e.cfg.SubmitTimeout)
		seq, err := e.ledger.LoadAccountSequence(seqCtx, c.Inner.Source)
		cancel()
		if err == nil {
			return e.factory.Resequence(c, seq, quote.Bid)
		}
		r.logger.Warn("account sequence unavailable, keeping sequence", zap.Error(err))
	}

	if quote.Bid <= c.Fee() {
		return c, nil
	}
	return e.factory.Rebid(c, quote.Bid)
}

// reconcile reports the first of hashes that made it into a ledger.
func (r *run) reconcile(ctx context.Context, hashes []string) (string, bool) {
	e := r.engine
	for _, h := range hashes {
		if ctx.Err() != nil {
			return "", false
		}
		checkCtx, cancel := context.WithTimeout(ctx, e.cfg.SubmitTimeout)
		included, err := e.ledger.TransactionIncluded(checkCtx, h)
		cancel()
		if err != nil {
			r.logger.Debug("inclusion check failed", zap.String("tx_hash", h), zap.Error(err))
			continue
		}
		if included {
			return h, true
		}
	}
	return "", false
}

type nopRecorder struct{}

func (nopRecorder) RecordAttempt(context.Context, model.SubmissionAttempt) {}
