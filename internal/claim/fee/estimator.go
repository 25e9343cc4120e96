// Package fee derives per-operation fee bids from network fee statistics.
package fee

import (
	"errors"
	"fmt"
	"math"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

// Config bounds and shapes the bids produced by an Estimator.
type Config struct {
	Floor            int64
	Ceiling          int64
	Multiplier       float64
	Percentile       int
	Granularity      int64
	EscalationFactor float64
}

// DefaultConfig matches the binary's flag defaults.
func DefaultConfig() Config {
	return Config{
		Floor:            100_000,
		Ceiling:          500_000,
		Multiplier:       10,
		Percentile:       99,
		Granularity:      100,
		EscalationFactor: 1.5,
	}
}

// Validate reports inconsistent settings.
func (c Config) Validate() error {
	var errs []error
	if c.Floor < 0 {
		errs = append(errs, errors.New("fee floor must not be negative"))
	}
	if c.Floor > c.Ceiling {
		errs = append(errs, fmt.Errorf("fee floor %d exceeds ceiling %d", c.Floor, c.Ceiling))
	}
	if c.Multiplier <= 0 {
		errs = append(errs, errors.New("fee multiplier must be positive"))
	}
	if c.Granularity <= 0 {
		errs = append(errs, errors.New("fee granularity must be positive"))
	}
	if c.Percentile < 0 || c.Percentile > 100 {
		errs = append(errs, fmt.Errorf("fee percentile %d out of range", c.Percentile))
	}
	if c.EscalationFactor < 1 {
		errs = append(errs, errors.New("fee escalation factor must be at least 1"))
	}
	return errors.Join(errs...)
}

// Estimator turns fee statistics into bids. It holds no state and is safe for
// concurrent use.
type Estimator struct {
	cfg Config
}

// NewEstimator validates cfg and returns an Estimator.
func NewEstimator(cfg Config) (*Estimator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{cfg: cfg}, nil
}

// Quote computes a bid that is at least prior, never above the ceiling and rounded up
// to the configured granularity. A nil stats quotes the floor.
func (e *Estimator) Quote(stats *model.FeeStats, prior int64) model.FeeQuote {
	q := model.FeeQuote{
		Percentile: e.cfg.Percentile,
		Multiplier: e.cfg.Multiplier,
		Floor:      e.cfg.Floor,
		Ceiling:    e.cfg.Ceiling,
	}

	floor := e.cfg.Floor
	if prior > floor {
		floor = prior
	}

	bid := floor
	if stats == nil {
		q.Fallback = true
	} else {
		q.Observed = stats.Percentile(e.cfg.Percentile)
		if scaled := e.scale(q.Observed); scaled > bid {
			bid = scaled
		}
	}

	bid = roundUp(bid, e.cfg.Granularity)
	if bid > e.cfg.Ceiling {
		bid = e.cfg.Ceiling
	}
	q.Bid = bid
	return q
}

// Escalate quotes the next bid after current was not good enough. The prior is
// current scaled by the escalation factor so retries climb even when statistics
// have not moved.
func (e *Estimator) Escalate(stats *model.FeeStats, current int64) model.FeeQuote {
	prior := int64(math.Ceil(float64(current) * e.cfg.EscalationFactor))
	if prior < current {
		prior = current
	}
	return e.Quote(stats, prior)
}

func (e *Estimator) scale(observed int64) int64 {
	v := math.Ceil(float64(observed) * e.cfg.Multiplier)
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func roundUp(v, granularity int64) int64 {
	if granularity <= 1 {
		return v
	}
	rem := v % granularity
	if rem == 0 {
		return v
	}
	if v > math.MaxInt64-(granularity-rem) {
		return math.MaxInt64
	}
	return v + granularity - rem
}
