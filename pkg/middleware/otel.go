package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lazynav-dev/lazynav/pkg/router"
)

// Default tracer name.
const defaultTracerName = "lazynav"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "lazynav").
	TracerName string

	// Filter determines which navigations to trace.
	// Return true to trace the navigation, false to skip.
	// If nil, all navigations are traced.
	Filter func(nc *router.NavContext) bool

	// AttributeExtractor extracts custom attributes from the navigation.
	// Called for each traced navigation, after the dispatch completes.
	AttributeExtractor func(nc *router.NavContext) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithNavigationFilter sets a filter function for navigations.
func WithNavigationFilter(filter func(nc *router.NavContext) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(nc *router.NavContext) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		Filter:     nil,
	}
}

// OpenTelemetry creates middleware that traces every navigation.
//
// The middleware:
//   - Creates a span per navigation named "navigate {path}"
//   - Records the target and previous paths as attributes
//   - Records route churn (matched, entered, exited, reused) after
//     the dispatch completes
//   - Records errors and sets span status
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before serving:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return router.MiddlewareFunc(func(nc *router.NavContext, next func() error) error {
		if config.Filter != nil && !config.Filter(nc) {
			return next()
		}

		_, span := config.tracer.Start(
			context.Background(),
			formatSpanName(nc),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.String("lazynav.path", nc.Path),
				attribute.String("lazynav.from", nc.From),
			),
			trace.WithTimestamp(time.Now()),
		)
		defer span.End()

		err := next()

		span.SetAttributes(
			attribute.Bool("lazynav.matched", nc.Matched),
			attribute.Int("lazynav.routes_entered", nc.Entered),
			attribute.Int("lazynav.routes_exited", nc.Exited),
			attribute.Int("lazynav.routes_reused", nc.Reused),
		)
		if config.AttributeExtractor != nil {
			span.SetAttributes(config.AttributeExtractor(nc)...)
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	})
}

// formatSpanName creates a span name from the navigation context.
func formatSpanName(nc *router.NavContext) string {
	path := nc.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("navigate %s", path)
}
