package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

var (
	schedulerCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "scheduler",
		Name:      "cycles_total",
		Help:      "Count of scheduling cycles.",
	}, []string{"network", "status"})

	schedulerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "scheduler",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of scheduling cycles.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})

	schedulerDueResources = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "scheduler",
		Name:      "due_resources",
		Help:      "Resources due within the lookahead per cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	schedulerOutcomeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "scheduler",
		Name:      "outcomes_total",
		Help:      "Count of resource outcomes by status and error category.",
	}, []string{"network", "status", "category"})

	schedulerTriggerLateness = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "scheduler",
		Name:      "trigger_lateness_seconds",
		Help:      "How far past the trigger instant the first submission left.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2, 5, 10},
	}, []string{"network"})
)

// Scheduler tracks metrics for the submission scheduler.
type Scheduler struct {
	network model.Network
}

// NewScheduler constructs a Scheduler metrics collector.
func NewScheduler(network model.Network) *Scheduler {
	if network == "" {
		network = "unknown"
	}
	return &Scheduler{network: network}
}

// ObserveCycle records one scheduling cycle.
func (m Scheduler) ObserveCycle(err error, due int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerCycleTotal.WithLabelValues(string(m.network), status).Inc()
	schedulerCycleDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	schedulerDueResources.WithLabelValues(string(m.network)).Observe(float64(due))
}

// ObserveOutcome counts one resource outcome.
func (m Scheduler) ObserveOutcome(status model.Status, category model.ErrorCategory) {
	label := string(category)
	if label == "" {
		label = "none"
	}
	schedulerOutcomeTotal.WithLabelValues(string(m.network), string(status), label).Inc()
}

// ObserveTriggerLateness records the delay past the trigger instant. Early
// departures are recorded as zero.
func (m Scheduler) ObserveTriggerLateness(lateness time.Duration) {
	if lateness < 0 {
		lateness = 0
	}
	schedulerTriggerLateness.WithLabelValues(string(m.network)).Observe(lateness.Seconds())
}
