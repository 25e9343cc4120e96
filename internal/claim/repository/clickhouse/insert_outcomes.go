package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/pkg/safe"
)

const insertOutcomesQuery = `
INSERT INTO claim_outcomes (
	cycle_id,
	network,
	resource_id,
	status,
	attempts,
	final_fee,
	tx_hash,
	category,
	error,
	unlock_at,
	started_at,
	finished_at
) VALUES`

// InsertOutcomes stores per-resource cycle outcomes.
func (r *Repository) InsertOutcomes(ctx context.Context, outcomes []model.Outcome) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_outcomes", firstNetwork(outcomes), err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOutcomesQuery)
	if err != nil {
		return fmt.Errorf("prepare outcomes batch: %w", err)
	}

	for _, o := range outcomes {
		var attempts uint32
		if attempts, err = safe.Uint32(o.Attempts); err != nil {
			return fmt.Errorf("attempts of %s: %w", o.ResourceID, err)
		}
		if err = batch.Append(
			o.CycleID,
			string(o.Network),
			o.ResourceID,
			string(o.Status),
			attempts,
			o.FinalFee,
			o.TransactionHash,
			string(o.Category),
			o.Error,
			o.UnlockAt,
			o.StartedAt,
			o.FinishedAt,
		); err != nil {
			return fmt.Errorf("append outcome: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outcomes: %w", err)
	}
	return nil
}
