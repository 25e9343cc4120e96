package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/pkg/safe"
)

const insertSubmissionAttemptsQuery = `
INSERT INTO claim_submission_attempts (
	id,
	cycle_id,
	network,
	resource_id,
	tx_hash,
	endpoint,
	attempt,
	copy,
	fee,
	outcome,
	category,
	code,
	error,
	timestamp
) VALUES`

// InsertSubmissionAttempts appends attempt rows to the audit trail.
func (r *Repository) InsertSubmissionAttempts(ctx context.Context, attempts []model.SubmissionAttempt) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_submission_attempts", firstNetwork(attempts), err, start)
	}()

	if len(attempts) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertSubmissionAttemptsQuery)
	if err != nil {
		return fmt.Errorf("prepare submission attempts batch: %w", err)
	}

	for _, a := range attempts {
		var attempt, copyIndex uint32
		if attempt, err = safe.Uint32(a.Attempt); err != nil {
			return fmt.Errorf("attempt of %s: %w", a.ResourceID, err)
		}
		if copyIndex, err = safe.Uint32(a.Copy); err != nil {
			return fmt.Errorf("copy of %s: %w", a.ResourceID, err)
		}
		if err = batch.Append(
			a.ID,
			a.CycleID,
			string(a.Network),
			a.ResourceID,
			a.TransactionHash,
			a.Endpoint,
			attempt,
			copyIndex,
			a.Fee,
			string(a.Outcome),
			string(a.Category),
			a.Code,
			a.Error,
			a.Timestamp,
		); err != nil {
			return fmt.Errorf("append submission attempt: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert submission attempts: %w", err)
	}
	return nil
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.SubmissionAttempt:
		return v.Network
	case model.Outcome:
		return v.Network
	default:
		return ""
	}
}
