package audit

import (
	"context"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository persists audit rows in batches.
	Repository interface {
		InsertSubmissionAttempts(ctx context.Context, attempts []model.SubmissionAttempt) error
		InsertOutcomes(ctx context.Context, outcomes []model.Outcome) error
	}
	OutcomeRecorder interface {
		RecordOutcome(ctx context.Context, outcome model.Outcome)
	}
)
