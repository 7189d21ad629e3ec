// Package metrics holds the Prometheus instruments exposed on /metrics.
// Collectors are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PreviewsByStatus is refreshed by the status summary job.
	PreviewsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "previews_by_status",
			Help: "Number of tracked previews per lifecycle status.",
		}, []string{"status"})

	// PreviewOperations counts store operations by name and outcome (ok, validation_error, storage_error).
	PreviewOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preview_operations_total",
			Help: "Preview store operations partitioned by operation and result.",
		}, []string{"operation", "result"})
)

func init() {
	prometheus.MustRegister(
		PreviewsByStatus,
		PreviewOperations,
	)
}
