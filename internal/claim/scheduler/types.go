package scheduler

import (
	"context"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/internal/claim/txfactory"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Watcher interface {
		Poll(ctx context.Context) ([]model.LockedResource, error)
		Lookup(ctx context.Context, id string) (model.LockedResource, error)
	}
	LedgerReader interface {
		LatestBlocks(ctx context.Context, limit int) ([]model.LedgerSnapshot, error)
		FeeStatistics(ctx context.Context) (*model.FeeStats, error)
		LoadAccountSequence(ctx context.Context, account string) (int64, error)
	}
	LedgerClock interface {
		ObserveAll(snapshots []model.LedgerSnapshot) int
		EstimateNextClose() time.Time
		EstimateCloseAfter(t time.Time) (time.Time, uint32)
		AverageInterval() time.Duration
	}
	FeeEstimator interface {
		Quote(stats *model.FeeStats, prior int64) model.FeeQuote
	}
	Factory interface {
		Build(req txfactory.BuildRequest) (*model.CandidateTransaction, error)
	}
	Engine interface {
		Submit(ctx context.Context, cycleID string, c *model.CandidateTransaction) (*model.CandidateTransaction, error)
	}
	Recorder interface {
		RecordOutcome(ctx context.Context, outcome model.Outcome)
	}
	Metrics interface {
		ObserveCycle(err error, due int, started time.Time)
		ObserveOutcome(status model.Status, category model.ErrorCategory)
		ObserveTriggerLateness(lateness time.Duration)
	}
)
