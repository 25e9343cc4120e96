package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

var (
	watcherPollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "watcher",
		Name:      "poll_total",
		Help:      "Count of locked resource polls.",
	}, []string{"network", "status"})

	watcherPollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "watcher",
		Name:      "poll_duration_seconds",
		Help:      "Duration of locked resource polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	watcherTrackedResources = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "unlockclaimer",
		Subsystem: "watcher",
		Name:      "tracked_resources",
		Help:      "Resources with a resolved unlock instant after the last poll.",
	}, []string{"network"})

	watcherSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "watcher",
		Name:      "skipped_total",
		Help:      "Count of resources left out of a poll, by reason.",
	}, []string{"network", "reason"})
)

// Watcher tracks metrics for the balance watcher.
type Watcher struct {
	network model.Network
}

// NewWatcher constructs a Watcher metrics collector.
func NewWatcher(network model.Network) *Watcher {
	if network == "" {
		network = "unknown"
	}
	return &Watcher{network: network}
}

// ObservePoll records one poll and the number of resources it resolved.
func (m Watcher) ObservePoll(err error, resources int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	watcherPollTotal.WithLabelValues(string(m.network), status).Inc()
	watcherPollDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		watcherTrackedResources.WithLabelValues(string(m.network)).Set(float64(resources))
	}
}

// ObserveSkipped counts one resource dropped for reason.
func (m Watcher) ObserveSkipped(reason string) {
	watcherSkippedTotal.WithLabelValues(string(m.network), reason).Inc()
}
