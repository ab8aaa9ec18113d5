package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "lazynav").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for navigation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "lazynav",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for navigations.
type metrics struct {
	navigationsTotal   *prometheus.CounterVec
	navigationDuration prometheus.Histogram
	routesEntered      prometheus.Counter
	routesExited       prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of navigations by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		navigationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigation_duration_seconds",
			Help:        "Navigation dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		routesEntered: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_entered_total",
			Help:        "Total number of routes entered",
			ConstLabels: config.ConstLabels,
		}),

		routesExited: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes_exited_total",
			Help:        "Total number of routes torn down",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for
// navigations.
//
// Metrics collected:
//   - lazynav_navigations_total: Counter of navigations by status
//     (ok, not_found, error)
//   - lazynav_navigation_duration_seconds: Histogram of dispatch duration
//   - lazynav_routes_entered_total: Counter of route entries
//   - lazynav_routes_exited_total: Counter of route teardowns
//
// Example:
//
//	nav.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) router.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return router.MiddlewareFunc(func(nc *router.NavContext, next func() error) error {
		start := time.Now()

		err := next()

		m.navigationDuration.Observe(time.Since(start).Seconds())

		status := "ok"
		switch {
		case err != nil:
			status = "error"
		case !nc.Matched:
			status = "not_found"
		}
		m.navigationsTotal.WithLabelValues(status).Inc()
		m.routesEntered.Add(float64(nc.Entered))
		m.routesExited.Add(float64(nc.Exited))

		return err
	})
}

// =============================================================================
// Module Cache Collector
// =============================================================================

// CacheCollector exposes module cache counters as Prometheus metrics. It
// reads the cache's atomic counters at scrape time, so it is safe to
// register regardless of which goroutine drives the loop.
type CacheCollector struct {
	cache *module.Cache

	loads    *prometheus.Desc
	hits     *prometheus.Desc
	dedups   *prometheus.Desc
	failures *prometheus.Desc
}

// NewCacheCollector creates a collector over the given module cache.
func NewCacheCollector(cache *module.Cache, opts ...MetricsOption) *CacheCollector {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	fqName := func(name string) string {
		return prometheus.BuildFQName(config.Namespace, config.Subsystem, name)
	}
	return &CacheCollector{
		cache: cache,
		loads: prometheus.NewDesc(fqName("module_loads_total"),
			"Total number of module source invocations", nil, config.ConstLabels),
		hits: prometheus.NewDesc(fqName("module_cache_hits_total"),
			"Total number of module loads answered from cache", nil, config.ConstLabels),
		dedups: prometheus.NewDesc(fqName("module_load_dedup_total"),
			"Total number of module loads that joined an in-flight load", nil, config.ConstLabels),
		failures: prometheus.NewDesc(fqName("module_load_failures_total"),
			"Total number of module loads that failed", nil, config.ConstLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.loads
	ch <- c.hits
	ch <- c.dedups
	ch <- c.failures
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.loads, prometheus.CounterValue, float64(stats.Loads))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.dedups, prometheus.CounterValue, float64(stats.Dedups))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(stats.Failures))
}
