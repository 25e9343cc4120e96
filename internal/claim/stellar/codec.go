package stellar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Codec encodes model transactions as fee-bump envelopes for one network.
type Codec struct {
	passphrase string
}

// NewCodec returns a Codec signing for the network identified by passphrase.
func NewCodec(passphrase string) (*Codec, error) {
	if passphrase == "" {
		return nil, errors.New("network passphrase is required")
	}
	return &Codec{passphrase: passphrase}, nil
}

// InnerHash returns the signature base hash of inner.
func (c *Codec) InnerHash(inner model.InnerTransaction) ([]byte, error) {
	tx, err := buildInner(inner)
	if err != nil {
		return nil, err
	}
	h, err := tx.Hash(c.passphrase)
	if err != nil {
		return nil, fmt.Errorf("hash inner transaction: %w", err)
	}
	return h[:], nil
}

// EnvelopeHash returns the hash identifying the fee-bump envelope on the ledger.
func (c *Codec) EnvelopeHash(inner model.InnerTransaction, envelope model.FeeEnvelope) ([]byte, error) {
	envelope.Signatures = nil
	fb, err := buildEnvelope(inner, envelope)
	if err != nil {
		return nil, err
	}
	h, err := fb.Hash(c.passphrase)
	if err != nil {
		return nil, fmt.Errorf("hash fee bump: %w", err)
	}
	return h[:], nil
}

// Encode returns the base64 XDR of the signed fee-bump envelope.
func (c *Codec) Encode(inner model.InnerTransaction, envelope model.FeeEnvelope) ([]byte, error) {
	fb, err := buildEnvelope(inner, envelope)
	if err != nil {
		return nil, err
	}
	b64, err := fb.Base64()
	if err != nil {
		return nil, fmt.Errorf("encode fee bump: %w", err)
	}
	return []byte(b64), nil
}

func buildInner(inner model.InnerTransaction) (*txnbuild.Transaction, error) {
	ops := make([]txnbuild.Operation, 0, len(inner.Operations))
	for _, op := range inner.Operations {
		switch op.Kind {
		case model.OperationClaim:
			ops = append(ops, &txnbuild.ClaimClaimableBalance{BalanceID: op.BalanceID})
		case model.OperationTransfer:
			asset, err := parseAsset(op.Asset)
			if err != nil {
				return nil, err
			}
			ops = append(ops, &txnbuild.Payment{Destination: op.Destination, Amount: op.Amount, Asset: asset})
		default:
			return nil, fmt.Errorf("unsupported operation %q", op.Kind)
		}
	}

	lower, upper := windowBounds(inner.Window)
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &txnbuild.SimpleAccount{AccountID: inner.Source, Sequence: inner.Sequence},
		IncrementSequenceNum: false,
		Operations:           ops,
		BaseFee:              inner.BaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimebounds(lower, upper)},
	})
	if err != nil {
		return nil, fmt.Errorf("build inner transaction: %w", err)
	}
	if len(inner.Signatures) == 0 {
		return tx, nil
	}
	sigs, err := decorate(inner.Signatures)
	if err != nil {
		return nil, err
	}
	return tx.AddSignatureDecorated(sigs...)
}

func buildEnvelope(inner model.InnerTransaction, envelope model.FeeEnvelope) (*txnbuild.FeeBumpTransaction, error) {
	tx, err := buildInner(inner)
	if err != nil {
		return nil, err
	}
	fb, err := txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      tx,
		FeeAccount: envelope.FeePayer,
		BaseFee:    envelope.Fee,
	})
	if err != nil {
		return nil, fmt.Errorf("build fee bump: %w", err)
	}
	if len(envelope.Signatures) == 0 {
		return fb, nil
	}
	sigs, err := decorate(envelope.Signatures)
	if err != nil {
		return nil, err
	}
	return fb.AddSignatureDecorated(sigs...)
}

// windowBounds widens the window to whole seconds, the ledger's time resolution.
func windowBounds(w model.ValidityWindow) (int64, int64) {
	lower := w.Lower.Unix()
	if lower < 0 {
		lower = 0
	}
	upper := w.Upper.Unix()
	if w.Upper.Nanosecond() > 0 {
		upper++
	}
	return lower, upper
}

func decorate(sigs []model.Signature) ([]xdr.DecoratedSignature, error) {
	out := make([]xdr.DecoratedSignature, 0, len(sigs))
	for _, s := range sigs {
		kp, err := keypair.ParseAddress(s.Signer)
		if err != nil {
			return nil, fmt.Errorf("signer %s: %w", s.Signer, err)
		}
		out = append(out, xdr.DecoratedSignature{
			Hint:      xdr.SignatureHint(kp.Hint()),
			Signature: xdr.Signature(s.Bytes),
		})
	}
	return out, nil
}

// parseAsset accepts Horizon's canonical asset form: "native" or "CODE:ISSUER".
func parseAsset(s string) (txnbuild.Asset, error) {
	if s == "" || s == "native" {
		return txnbuild.NativeAsset{}, nil
	}
	code, issuer, ok := strings.Cut(s, ":")
	if !ok || code == "" || issuer == "" {
		return nil, fmt.Errorf("malformed asset %q", s)
	}
	return txnbuild.CreditAsset{Code: code, Issuer: issuer}, nil
}
