package submission

import (
	"context"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/pkg/workerpool"
	"go.uber.org/zap"
)

type floodResult struct {
	started bool
	rec     model.SubmissionAttempt
	err     error
}

// flood sends identical copies of c across the endpoints, copy i delayed by
// i*FloodSpacing. The first success or duplicate answer cancels copies that have
// not started yet; copies already in flight run to completion.
func (r *run) flood(ctx context.Context, c *model.CandidateTransaction, attempt int) error {
	e := r.engine
	copies := make([]Submitter, e.cfg.FloodCopies)
	for i := range copies {
		copies[i] = r.nextSubmitter()
	}

	startCtx, stopStarting := context.WithCancel(ctx)
	defer stopStarting()

	results, _ := workerpool.Map(startCtx, len(copies), copies, func(startCtx context.Context, i int, s Submitter) floodResult {
		if err := e.clock.Sleep(startCtx, time.Duration(i)*e.cfg.FloodSpacing); err != nil {
			return floodResult{}
		}
		rec, err := r.submit(ctx, c, s, attempt, i)
		if err == nil || model.Categorize(err).Included() {
			stopStarting()
		}
		return floodResult{started: true, rec: rec, err: err}
	})

	var (
		best     error
		started  int
		included bool
	)
	for _, res := range results {
		if !res.started {
			continue
		}
		started++
		c.Attempts = append(c.Attempts, res.rec)
		if res.err == nil || model.Categorize(res.err).Included() {
			included = true
			continue
		}
		if best == nil || rank(model.Categorize(res.err)) > rank(model.Categorize(best)) {
			best = res.err
		}
	}
	if started < len(copies) {
		r.logger.Debug("flood copies skipped", zap.Int("started", started), zap.Int("copies", len(copies)))
	}

	switch {
	case included:
		return nil
	case started == 0:
		return ctx.Err()
	default:
		return best
	}
}

// rank orders failure categories by how much they say about the candidate's fate.
func rank(category model.ErrorCategory) int {
	switch {
	case category.Included():
		return 100
	case category.Terminal():
		return 90
	}
	switch category {
	case model.CategoryStaleSequence:
		return 50
	case model.CategoryFeeTooLow:
		return 40
	case model.CategoryTooEarly:
		return 30
	case model.CategoryTimeout:
		return 20
	case model.CategoryTransport:
		return 10
	default:
		return 0
	}
}
