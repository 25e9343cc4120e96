package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/pkg/batcher"
)

// enqueueTimeout caps how long a full buffer may hold up the submission path.
const enqueueTimeout = 100 * time.Millisecond

// Sink buffers audit rows and writes them to a Repository in batches.
type Sink struct {
	attempts *batcher.Batcher[model.SubmissionAttempt]
	outcomes *batcher.Batcher[model.Outcome]
	logger   *zap.Logger
}

// NewSink returns a Sink over repo. Start must be called before recording.
func NewSink(repo Repository, cfg batcher.Config, logger *zap.Logger) *Sink {
	logger = logger.Named("audit")
	return &Sink{
		attempts: batcher.New(logger.Named("attempts"), repo.InsertSubmissionAttempts, cfg),
		outcomes: batcher.New(logger.Named("outcomes"), repo.InsertOutcomes, cfg),
		logger:   logger,
	}
}

// Start launches the flush loops. They outlive ctx; Stop drains and ends them.
func (s *Sink) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	s.attempts.Start(ctx)
	s.outcomes.Start(ctx)
}

// Stop flushes buffered rows and waits for the flush loops to exit.
func (s *Sink) Stop() {
	s.attempts.Stop()
	s.outcomes.Stop()
}

// RecordAttempt queues one submission attempt row.
func (s *Sink) RecordAttempt(ctx context.Context, attempt model.SubmissionAttempt) {
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()
	if err := s.attempts.Add(ctx, attempt); err != nil {
		s.logger.Warn("submission attempt dropped from audit trail",
			zap.String("resource_id", attempt.ResourceID),
			zap.String("tx_hash", attempt.TransactionHash),
			zap.Error(err),
		)
	}
}

// RecordOutcome queues one outcome row. Attempt history is stored separately.
func (s *Sink) RecordOutcome(ctx context.Context, outcome model.Outcome) {
	outcome.History = nil
	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()
	if err := s.outcomes.Add(ctx, outcome); err != nil {
		s.logger.Warn("outcome dropped from audit trail",
			zap.String("resource_id", outcome.ResourceID),
			zap.String("status", string(outcome.Status)),
			zap.Error(err),
		)
	}
}
