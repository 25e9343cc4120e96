package stellar

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/goodnatureofminers/unlockclaimer/pkg/safe"
	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
	hProtocol "github.com/stellar/go-stellar-sdk/protocols/horizon"
	"go.uber.org/zap"
)

const (
	balancesPageLimit = 200
	maxBalancePages   = 50
)

// Reader answers ledger-read queries against one Horizon endpoint.
type Reader struct {
	client HorizonClient
	logger *zap.Logger
}

// NewReader returns a Reader over client.
func NewReader(client HorizonClient, logger *zap.Logger) *Reader {
	return &Reader{client: client, logger: logger.Named("reader")}
}

// LatestBlocks returns the newest limit ledger closes, newest first.
func (r *Reader) LatestBlocks(ctx context.Context, limit int) ([]model.LedgerSnapshot, error) {
	if limit <= 0 {
		limit = 1
	}
	page, err := await(ctx, func() (hProtocol.LedgersPage, error) {
		return r.client.Ledgers(horizonclient.LedgerRequest{Order: horizonclient.OrderDesc, Limit: uint(limit)})
	})
	if err != nil {
		return nil, fmt.Errorf("latest ledgers: %w", err)
	}

	out := make([]model.LedgerSnapshot, 0, len(page.Embedded.Records))
	for _, l := range page.Embedded.Records {
		seq, err := safe.Uint32(l.Sequence)
		if err != nil {
			return nil, fmt.Errorf("ledger sequence: %w", err)
		}
		out = append(out, model.LedgerSnapshot{Sequence: seq, ClosedAt: l.ClosedAt.UTC()})
	}
	return out, nil
}

// FeeStatistics returns the network's recent max-fee percentiles.
func (r *Reader) FeeStatistics(ctx context.Context) (*model.FeeStats, error) {
	stats, err := await(ctx, r.client.FeeStats)
	if err != nil {
		return nil, fmt.Errorf("fee stats: %w", err)
	}
	return &model.FeeStats{
		LastLedger:        stats.LastLedger,
		LastLedgerBaseFee: stats.LastLedgerBaseFee,
		CapacityUsage:     stats.LedgerCapacityUsage,
		P10:               stats.MaxFee.P10,
		P50:               stats.MaxFee.P50,
		P70:               stats.MaxFee.P70,
		P90:               stats.MaxFee.P90,
		P95:               stats.MaxFee.P95,
		P99:               stats.MaxFee.P99,
		Max:               stats.MaxFee.Max,
	}, nil
}

// LoadAccountSequence returns the current sequence number of account.
func (r *Reader) LoadAccountSequence(ctx context.Context, account string) (int64, error) {
	acct, err := await(ctx, func() (hProtocol.Account, error) {
		return r.client.AccountDetail(horizonclient.AccountRequest{AccountID: account})
	})
	if err != nil {
		return 0, fmt.Errorf("account %s: %w", account, err)
	}
	seq, err := acct.GetSequenceNumber()
	if err != nil {
		return 0, fmt.Errorf("account %s sequence: %w", account, err)
	}
	return seq, nil
}

// QueryLockedResources returns every claimable balance listing claimant.
func (r *Reader) QueryLockedResources(ctx context.Context, claimant string) ([]model.LockedResource, error) {
	req := horizonclient.ClaimableBalanceRequest{Claimant: claimant, Limit: balancesPageLimit}
	var out []model.LockedResource
	for page := 0; page < maxBalancePages; page++ {
		res, err := await(ctx, func() (hProtocol.ClaimableBalances, error) {
			return r.client.ClaimableBalances(req)
		})
		if err != nil {
			return nil, fmt.Errorf("claimable balances for %s: %w", claimant, err)
		}
		records := res.Embedded.Records
		for _, b := range records {
			resource, err := convertBalance(b)
			if err != nil {
				r.logger.Warn("skipping unreadable claimable balance",
					zap.String("resource_id", b.BalanceID),
					zap.String("category", string(model.CategoryInvalid)),
					zap.Error(err),
				)
				continue
			}
			out = append(out, resource)
		}
		if len(records) < balancesPageLimit {
			return out, nil
		}
		req.Cursor = records[len(records)-1].PagingToken()
	}
	r.logger.Warn("claimable balance listing truncated", zap.Int("pages", maxBalancePages))
	return out, nil
}

// LookupLockedResource returns one claimable balance or model.ErrResourceNotFound.
func (r *Reader) LookupLockedResource(ctx context.Context, id string) (*model.LockedResource, error) {
	b, err := await(ctx, func() (hProtocol.ClaimableBalance, error) {
		return r.client.ClaimableBalance(id)
	})
	if err != nil {
		if isNotFound(err) {
			return nil, model.ErrResourceNotFound
		}
		return nil, fmt.Errorf("claimable balance %s: %w", id, err)
	}
	resource, err := convertBalance(b)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// TransactionIncluded reports whether hash was applied successfully.
func (r *Reader) TransactionIncluded(ctx context.Context, hash string) (bool, error) {
	tx, err := await(ctx, func() (hProtocol.Transaction, error) {
		return r.client.TransactionDetail(hash)
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("transaction %s: %w", hash, err)
	}
	return tx.Successful, nil
}

// convertBalance maps a Horizon claimable balance. Relative predicates are converted
// to absolute ones by the network when the balance is created, so the last modified
// time only serves as creation time for malformed legacy records.
func convertBalance(b hProtocol.ClaimableBalance) (model.LockedResource, error) {
	r := model.LockedResource{
		ID:      b.BalanceID,
		Amount:  b.Amount,
		Asset:   b.Asset,
		Sponsor: b.Sponsor,
	}
	if b.LastModifiedTime != nil {
		r.CreatedAt = b.LastModifiedTime.UTC()
	}
	if b.BalanceID == "" {
		return r, errors.New("claimable balance without id")
	}
	for i, c := range b.Claimants {
		p, err := convertPredicate(c.Predicate)
		if err != nil {
			return r, fmt.Errorf("claimant %d: %w", i, err)
		}
		r.Claimants = append(r.Claimants, model.Claimant{Destination: c.Destination, Predicate: p})
	}
	return r, nil
}

// await runs a blocking Horizon call and abandons it when ctx ends first.
func await[T any](ctx context.Context, call func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := call()
		done <- result{v: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-done:
		return res.v, res.err
	}
}
