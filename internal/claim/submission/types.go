package submission

import (
	"context"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Submitter writes encoded envelopes to one ledger endpoint.
	Submitter interface {
		Endpoint() string
		Submit(ctx context.Context, payload []byte) (string, error)
	}
	LedgerReader interface {
		FeeStatistics(ctx context.Context) (*model.FeeStats, error)
		LoadAccountSequence(ctx context.Context, account string) (int64, error)
		TransactionIncluded(ctx context.Context, hash string) (bool, error)
	}
	FeeEstimator interface {
		Escalate(stats *model.FeeStats, current int64) model.FeeQuote
	}
	Factory interface {
		Rebid(c *model.CandidateTransaction, fee int64) (*model.CandidateTransaction, error)
		Resequence(c *model.CandidateTransaction, sequence, fee int64) (*model.CandidateTransaction, error)
	}
	Recorder interface {
		RecordAttempt(ctx context.Context, attempt model.SubmissionAttempt)
	}
	Metrics interface {
		ObserveAttempt(endpoint string, category model.ErrorCategory, started time.Time)
		ObserveBid(fee int64)
		ObserveResult(status model.Status, attempts int)
	}
)
