// Package observability holds the Prometheus metrics surface of the
// service.
package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// One collector per namespace; repeated calls reuse the instance so
	// metrics are never registered twice.
	collectors     = make(map[string]*Collector)
	collectorMutex sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	ProceduresAdded prometheus.Counter
	TagsUpdated     prometheus.Counter
	TreesBuilt      prometheus.Counter

	// Store metrics
	StoreOperations *prometheus.CounterVec
}

// NewCollector returns the metrics collector for the given namespace,
// creating it on first use.
func NewCollector(namespace string) *Collector {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if collector, ok := collectors[namespace]; ok {
		return collector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	proceduresAdded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "procedures_added_total",
			Help:      "Total number of procedure records added",
		},
	)

	tagsUpdated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tags_updated_total",
			Help:      "Total number of procedure tag updates",
		},
	)

	treesBuilt := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trees_built_total",
			Help:      "Total number of keyword trees parsed",
		},
	)

	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of record store operations",
		},
		[]string{"operation", "status"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		proceduresAdded,
		tagsUpdated,
		treesBuilt,
		storeOperations,
	)

	collector := &Collector{
		registry:        registry,
		HTTPRequests:    httpRequests,
		HTTPDuration:    httpDuration,
		ProceduresAdded: proceduresAdded,
		TagsUpdated:     tagsUpdated,
		TreesBuilt:      treesBuilt,
		StoreOperations: storeOperations,
	}
	collectors[namespace] = collector
	return collector
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
