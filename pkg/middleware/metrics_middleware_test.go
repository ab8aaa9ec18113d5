package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusMiddleware_RecordsStatusAndChurn(t *testing.T) {
	t.Run("matched navigation counts ok", func(t *testing.T) {
		resetGlobalMetricsForTest()
		mw := Prometheus(WithRegistry(prometheus.NewRegistry()))

		nc := &router.NavContext{Path: "/b"}
		err := mw.Handle(nc, func() error {
			nc.Matched = true
			nc.Entered = 2
			nc.Exited = 1
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m := globalMetrics
		if got := metricCounterValue(t, m.navigationsTotal.WithLabelValues("ok")); got != 1 {
			t.Fatalf("navigations_total(ok) = %v, want 1", got)
		}
		if got := metricCounterValue(t, m.routesEntered); got != 2 {
			t.Fatalf("routes_entered_total = %v, want 2", got)
		}
		if got := metricCounterValue(t, m.routesExited); got != 1 {
			t.Fatalf("routes_exited_total = %v, want 1", got)
		}
		if got := metricHistogramCount(t, m.navigationDuration); got == 0 {
			t.Fatal("expected navigation_duration_seconds to have samples")
		}
	})

	t.Run("unmatched navigation counts not_found", func(t *testing.T) {
		resetGlobalMetricsForTest()
		mw := Prometheus(WithRegistry(prometheus.NewRegistry()))

		nc := &router.NavContext{Path: "/nope"}
		if err := mw.Handle(nc, func() error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := metricCounterValue(t, globalMetrics.navigationsTotal.WithLabelValues("not_found")); got != 1 {
			t.Fatalf("navigations_total(not_found) = %v, want 1", got)
		}
	})

	t.Run("error propagates and counts error", func(t *testing.T) {
		resetGlobalMetricsForTest()
		mw := Prometheus(WithRegistry(prometheus.NewRegistry()))

		wantErr := errors.New("boom")
		nc := &router.NavContext{Path: "/b"}
		if err := mw.Handle(nc, func() error { return wantErr }); !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want %v", err, wantErr)
		}

		if got := metricCounterValue(t, globalMetrics.navigationsTotal.WithLabelValues("error")); got != 1 {
			t.Fatalf("navigations_total(error) = %v, want 1", got)
		}
	})
}

func TestCacheCollector(t *testing.T) {
	loop := sched.NewLoop()
	loop.Start()
	t.Cleanup(loop.Stop)

	cache := module.NewCache(loop, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cache.Register("m", func(ctx context.Context) (module.Code, error) {
		return "code", nil
	})

	var v *deferred.Value[module.Code]
	loop.Do(func() {
		v = cache.Load("m")
		cache.Load("m") // joins the load in flight or hits the cache
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := v.Wait(ctx); err != nil {
		t.Fatalf("module load did not settle: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCacheCollector(cache))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	got := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			got[fam.GetName()] = m.GetCounter().GetValue()
		}
	}
	if got["lazynav_module_loads_total"] != 1 {
		t.Errorf("module_loads_total = %v, want 1", got["lazynav_module_loads_total"])
	}
	if got["lazynav_module_load_dedup_total"]+got["lazynav_module_cache_hits_total"] != 1 {
		t.Errorf("dedups+hits = %v, want 1 (second load answered without a source call)",
			got["lazynav_module_load_dedup_total"]+got["lazynav_module_cache_hits_total"])
	}
	if got["lazynav_module_load_failures_total"] != 0 {
		t.Errorf("module_load_failures_total = %v, want 0", got["lazynav_module_load_failures_total"])
	}
}
