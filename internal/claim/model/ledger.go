package model

import "time"

// LedgerSnapshot is one observed ledger close.
type LedgerSnapshot struct {
	Sequence uint32
	ClosedAt time.Time
}

// FeeStats carries the network's recent fee percentiles, per operation.
type FeeStats struct {
	LastLedger        uint32
	LastLedgerBaseFee int64
	CapacityUsage     float64
	P10               int64
	P50               int64
	P70               int64
	P90               int64
	P95               int64
	P99               int64
	Max               int64
}

// Percentile returns the fee at p, falling back to the closest lower known
// percentile for values without a dedicated field.
func (s FeeStats) Percentile(p int) int64 {
	switch {
	case p >= 100:
		return s.Max
	case p >= 99:
		return s.P99
	case p >= 95:
		return s.P95
	case p >= 90:
		return s.P90
	case p >= 70:
		return s.P70
	case p >= 50:
		return s.P50
	default:
		return s.P10
	}
}

// FeeQuote records how a bid was derived.
type FeeQuote struct {
	Percentile int
	Observed   int64
	Multiplier float64
	Floor      int64
	Ceiling    int64
	Bid        int64
	// Fallback is set when no statistics were available and the floor was used.
	Fallback bool
}
