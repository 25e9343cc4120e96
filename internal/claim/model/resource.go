// Package model defines domain models for unlock-triggered claim submission.
package model

import "time"

// Network names the ledger network a deployment targets. It is used as a metrics and
// audit label only.
type Network string

// Identity is an opaque signing capability owned outside the engine.
type Identity interface {
	Address() string
	Sign(payload []byte) ([]byte, error)
}

// Claimant pairs a destination account with the predicate gating its claim.
type Claimant struct {
	Destination string
	Predicate   Predicate
}

// LockedResource is a balance held under a conditional claim.
type LockedResource struct {
	ID        string
	Amount    string
	Asset     string
	Sponsor   string
	CreatedAt time.Time
	Claimants []Claimant

	// UnlockAt is the resolved instant the claimant's predicate first holds.
	UnlockAt time.Time
	// ClaimableUntil is the instant the predicate stops holding, zero when open ended.
	ClaimableUntil time.Time
}

// ClaimantFor returns the claim entry addressed to destination.
func (r LockedResource) ClaimantFor(destination string) (Claimant, bool) {
	for _, c := range r.Claimants {
		if c.Destination == destination {
			return c, true
		}
	}
	return Claimant{}, false
}

// Resolved reports whether the watcher assigned an unlock instant.
func (r LockedResource) Resolved() bool {
	return !r.UnlockAt.IsZero()
}
