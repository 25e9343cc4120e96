// Package txfactory builds and signs claim transactions wrapped in fee envelopes.
package txfactory

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

// MinBaseFee is the ledger's minimum per-operation fee, used for inner transactions.
const MinBaseFee int64 = 100

// Config shapes the validity window of built transactions.
type Config struct {
	EarlyOffset time.Duration
	GracePeriod time.Duration
}

// BuildRequest carries everything needed to sign a claim for one resource.
type BuildRequest struct {
	Resource model.LockedResource
	// Sequence is the claimant's current account sequence; the transaction uses the
	// next one.
	Sequence int64
	Fee      int64
}

// Factory produces signed candidates. Identities are fixed per factory because a
// rebid has to be signed by the same fee payer that signed the original envelope.
type Factory struct {
	codec       Codec
	claimant    model.Identity
	sponsor     model.Identity
	destination string
	cfg         Config
}

// New returns a Factory. sponsor may be nil, in which case the claimant pays its own
// fee envelope. An empty destination keeps the proceeds on the claimant account.
func New(codec Codec, claimant, sponsor model.Identity, destination string, cfg Config) (*Factory, error) {
	if codec == nil {
		return nil, errors.New("codec is required")
	}
	if claimant == nil {
		return nil, errors.New("claimant identity is required")
	}
	if cfg.EarlyOffset < 0 || cfg.GracePeriod <= 0 {
		return nil, errors.New("early offset must not be negative and grace period must be positive")
	}
	if destination == "" {
		destination = claimant.Address()
	}
	return &Factory{
		codec:       codec,
		claimant:    claimant,
		sponsor:     sponsor,
		destination: destination,
		cfg:         cfg,
	}, nil
}

// FeePayer returns the account paying for envelopes.
func (f *Factory) FeePayer() string {
	return f.payer().Address()
}

// Build creates a fully signed candidate for req.
func (f *Factory) Build(req BuildRequest) (*model.CandidateTransaction, error) {
	r := req.Resource
	if !r.Resolved() {
		return nil, buildErr(r.ID, "no unlock instant", nil)
	}
	if _, ok := r.ClaimantFor(f.claimant.Address()); !ok {
		return nil, buildErr(r.ID, "claimant not entitled", nil)
	}
	if req.Fee < MinBaseFee {
		return nil, buildErr(r.ID, "fee below ledger minimum", nil)
	}

	ops := []model.Operation{{Kind: model.OperationClaim, BalanceID: r.ID}}
	if f.destination != f.claimant.Address() {
		ops = append(ops, model.Operation{
			Kind:        model.OperationTransfer,
			Destination: f.destination,
			Amount:      r.Amount,
			Asset:       r.Asset,
		})
	}

	inner := model.InnerTransaction{
		Source:     f.claimant.Address(),
		Sequence:   req.Sequence + 1,
		Operations: ops,
		BaseFee:    MinBaseFee,
		Window: model.ValidityWindow{
			Lower: r.UnlockAt.Add(-f.cfg.EarlyOffset),
			Upper: r.UnlockAt.Add(f.cfg.GracePeriod),
		},
	}
	inner, err := f.signInner(r.ID, inner)
	if err != nil {
		return nil, err
	}

	c := &model.CandidateTransaction{
		ResourceID: r.ID,
		Inner:      inner,
		Status:     model.StatusBuilt,
	}
	if err := f.wrap(c, req.Fee); err != nil {
		return nil, err
	}
	return c, nil
}

// Rebid returns a copy of c whose envelope bids fee. The inner transaction and its
// signatures are reused untouched.
func (f *Factory) Rebid(c *model.CandidateTransaction, fee int64) (*model.CandidateTransaction, error) {
	if fee < MinBaseFee {
		return nil, buildErr(c.ResourceID, "fee below ledger minimum", nil)
	}
	next := successor(c)
	if err := f.wrap(next, fee); err != nil {
		return nil, err
	}
	return next, nil
}

// Resequence returns a copy of c re-signed for a new account sequence. It is used
// after the ledger reported the previous sequence as stale.
func (f *Factory) Resequence(c *model.CandidateTransaction, sequence, fee int64) (*model.CandidateTransaction, error) {
	if fee < MinBaseFee {
		return nil, buildErr(c.ResourceID, "fee below ledger minimum", nil)
	}
	inner := c.Inner
	inner.Sequence = sequence + 1
	inner.Operations = append([]model.Operation(nil), c.Inner.Operations...)
	inner.Signatures = nil

	inner, err := f.signInner(c.ResourceID, inner)
	if err != nil {
		return nil, err
	}
	next := successor(c)
	next.Inner = inner
	if err := f.wrap(next, fee); err != nil {
		return nil, err
	}
	return next, nil
}

func successor(c *model.CandidateTransaction) *model.CandidateTransaction {
	next := *c
	next.PriorHashes = append(append([]string(nil), c.PriorHashes...), c.Hash)
	next.Attempts = append([]model.SubmissionAttempt(nil), c.Attempts...)
	return &next
}

func (f *Factory) signInner(resourceID string, inner model.InnerTransaction) (model.InnerTransaction, error) {
	hash, err := f.codec.InnerHash(inner)
	if err != nil {
		return inner, buildErr(resourceID, "hash inner transaction", err)
	}
	sig, err := f.claimant.Sign(hash)
	if err != nil {
		return inner, buildErr(resourceID, "sign inner transaction", err)
	}
	inner.Signatures = []model.Signature{{Signer: f.claimant.Address(), Bytes: sig}}
	return inner, nil
}

func (f *Factory) wrap(c *model.CandidateTransaction, fee int64) error {
	payer := f.payer()
	env := model.FeeEnvelope{FeePayer: payer.Address(), Fee: fee}

	hash, err := f.codec.EnvelopeHash(c.Inner, env)
	if err != nil {
		return buildErr(c.ResourceID, "hash fee envelope", err)
	}
	sig, err := payer.Sign(hash)
	if err != nil {
		return buildErr(c.ResourceID, "sign fee envelope", err)
	}
	env.Signatures = []model.Signature{{Signer: payer.Address(), Bytes: sig}}

	payload, err := f.codec.Encode(c.Inner, env)
	if err != nil {
		return buildErr(c.ResourceID, "encode fee envelope", err)
	}

	c.Envelope = env
	c.Hash = hex.EncodeToString(hash)
	c.Payload = payload
	return nil
}

func (f *Factory) payer() model.Identity {
	if f.sponsor != nil {
		return f.sponsor
	}
	return f.claimant
}
