// Package middleware provides production-grade navigation middleware.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//   - A Prometheus collector exposing module cache counters
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware traces every navigation, recording the
// target path, the previous path, and the route churn (entered, exited,
// reused counts) once the dispatch completes.
//
//	nav.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	))
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before serving:
//
//	tp := sdktrace.NewTracerProvider(...)
//	otel.SetTracerProvider(tp)
//
// # Prometheus Metrics
//
// The Prometheus middleware collects navigation metrics:
//   - lazynav_navigations_total: Counter of navigations by status
//   - lazynav_navigation_duration_seconds: Dispatch duration histogram
//   - lazynav_routes_entered_total: Counter of route entries
//   - lazynav_routes_exited_total: Counter of route teardowns
//
//	nav.Use(middleware.Prometheus())
//	http.Handle("/metrics", promhttp.Handler())
//
// Module cache counters (loads, hits, dedups, failures) are exposed by
// registering a CacheCollector:
//
//	prometheus.MustRegister(middleware.NewCacheCollector(cache))
package middleware
