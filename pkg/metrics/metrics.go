// Package metrics defines the Prometheus collectors of the datasource. Grafana
// scrapes plugins through the default registerer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "cellery"
	subsystem = "datasource"

	ResultFound    = "found"
	ResultNotFound = "not_found"

	StatusOK    = "ok"
	StatusError = "error"
)

var (
	registryLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "registry_lookups_total",
		Help:      "Number of registry path lookups by result.",
	}, []string{"result"})

	queries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "queries_total",
		Help:      "Number of processed queries by type and status.",
	}, []string{"query_type", "status"})

	queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "query_duration_seconds",
		Help:      "Time spent processing a single query.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"query_type"})
)

func init() {
	prometheus.MustRegister(registryLookups, queries, queryDuration)
}

// RecordLookup records the outcome of a registry path lookup
func RecordLookup(err error) {
	result := ResultFound
	if err != nil {
		result = ResultNotFound
	}
	registryLookups.WithLabelValues(result).Inc()
}

// RecordQuery records metrics for a completed query
func RecordQuery(queryType string, duration time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	queries.WithLabelValues(queryType, status).Inc()
	queryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}
