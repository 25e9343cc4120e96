package model

import "time"

// OperationKind identifies a ledger operation the factory emits.
type OperationKind string

var (
	// OperationClaim claims a locked resource.
	OperationClaim OperationKind = "claim"
	// OperationTransfer moves the claimed proceeds to the destination.
	OperationTransfer OperationKind = "transfer"
)

// Operation is a single ledger operation.
type Operation struct {
	Kind        OperationKind
	BalanceID   string
	Destination string
	Amount      string
	Asset       string
}

// ValidityWindow bounds the ledger close times at which a transaction may apply.
type ValidityWindow struct {
	Lower time.Time
	Upper time.Time
}

// Signature is a signer's signature over a payload hash.
type Signature struct {
	Signer string
	Bytes  []byte
}

// InnerTransaction is the claimant-signed transaction. It is never mutated once
// signed; fee escalation only replaces the envelope around it.
type InnerTransaction struct {
	Source     string
	Sequence   int64
	Operations []Operation
	BaseFee    int64
	Window     ValidityWindow
	Signatures []Signature
}

// FeeEnvelope is the fee-paying wrapper around an inner transaction.
type FeeEnvelope struct {
	FeePayer   string
	Fee        int64
	Signatures []Signature
}

// Status is the lifecycle state of a candidate transaction.
type Status string

var (
	StatusBuilt     Status = "built"
	StatusSubmitted Status = "submitted"
	StatusRetrying  Status = "retrying"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusExhausted Status = "exhausted"
	StatusCanceled  Status = "canceled"
)

// Terminal reports whether no further submissions follow this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusRejected, StatusExhausted, StatusCanceled:
		return true
	default:
		return false
	}
}

// CandidateTransaction is a signed claim transaction and its submission history.
type CandidateTransaction struct {
	ResourceID string
	Inner      InnerTransaction
	Envelope   FeeEnvelope
	// Hash identifies the submitted envelope on the ledger, hex encoded.
	Hash string
	// Payload is the encoded, fully signed envelope ready for submission.
	Payload []byte
	// PriorHashes lists hashes of envelopes this candidate replaced.
	PriorHashes []string
	Status      Status
	Attempts    []SubmissionAttempt
}

// Hashes returns every hash this candidate was ever submitted under, newest first.
func (c *CandidateTransaction) Hashes() []string {
	out := make([]string, 0, len(c.PriorHashes)+1)
	out = append(out, c.Hash)
	for i := len(c.PriorHashes) - 1; i >= 0; i-- {
		out = append(out, c.PriorHashes[i])
	}
	return out
}

// Fee returns the current per-operation fee bid.
func (c *CandidateTransaction) Fee() int64 {
	return c.Envelope.Fee
}
