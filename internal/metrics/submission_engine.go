package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

var (
	submissionAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "submission_engine",
		Name:      "attempts_total",
		Help:      "Count of submitted copies by endpoint and error category.",
	}, []string{"network", "endpoint", "category"})

	submissionAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "submission_engine",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of a single submit call.",
		Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"network", "endpoint"})

	submissionBid = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "submission_engine",
		Name:      "fee_bid_stroops",
		Help:      "Per-operation fee bids placed on fee envelopes.",
		Buckets:   prometheus.ExponentialBuckets(100, 2, 16), // 100..3.2M
	}, []string{"network"})

	submissionResultTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "submission_engine",
		Name:      "results_total",
		Help:      "Count of candidate submissions by final status.",
	}, []string{"network", "status"})

	submissionRounds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "submission_engine",
		Name:      "rounds",
		Help:      "Submission rounds used per candidate.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"network", "status"})
)

// SubmissionEngine tracks metrics for the submission engine.
type SubmissionEngine struct {
	network model.Network
}

// NewSubmissionEngine constructs a SubmissionEngine metrics collector.
func NewSubmissionEngine(network model.Network) *SubmissionEngine {
	if network == "" {
		network = "unknown"
	}
	return &SubmissionEngine{network: network}
}

// ObserveAttempt records one submitted copy. An empty category means accepted.
func (m SubmissionEngine) ObserveAttempt(endpoint string, category model.ErrorCategory, started time.Time) {
	label := string(category)
	if label == "" {
		label = "none"
	}
	submissionAttemptsTotal.WithLabelValues(string(m.network), endpoint, label).Inc()
	submissionAttemptDuration.WithLabelValues(string(m.network), endpoint).Observe(time.Since(started).Seconds())
}

func (m SubmissionEngine) ObserveBid(fee int64) {
	submissionBid.WithLabelValues(string(m.network)).Observe(float64(fee))
}

// ObserveResult records the final status of one candidate.
func (m SubmissionEngine) ObserveResult(status model.Status, attempts int) {
	submissionResultTotal.WithLabelValues(string(m.network), string(status)).Inc()
	submissionRounds.WithLabelValues(string(m.network), string(status)).Observe(float64(attempts))
}
