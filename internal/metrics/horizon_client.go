// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

var (
	horizonRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unlockclaimer",
		Subsystem: "horizon_client",
		Name:      "operations_total",
		Help:      "Count of Horizon API operations.",
	}, []string{"operation", "network", "endpoint", "status"})
	horizonRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unlockclaimer",
		Subsystem: "horizon_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Horizon API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "endpoint", "status"})
)

// HorizonClient tracks metrics for calls to one Horizon endpoint.
type HorizonClient struct {
	network  model.Network
	endpoint string
}

// NewHorizonClient constructs a metrics collector for Horizon calls.
func NewHorizonClient(network model.Network, endpoint string) *HorizonClient {
	if network == "" {
		network = "unknown"
	}
	if endpoint == "" {
		endpoint = "unknown"
	}
	return &HorizonClient{network: network, endpoint: endpoint}
}

// Observe records a single Horizon call outcome and duration.
func (m HorizonClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	horizonRequestsTotal.WithLabelValues(operation, string(m.network), m.endpoint, status).Inc()
	horizonRequestDuration.WithLabelValues(operation, string(m.network), m.endpoint, status).Observe(time.Since(started).Seconds())
}
