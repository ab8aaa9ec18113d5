package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lazynav-dev/lazynav/internal/config"
	"github.com/lazynav-dev/lazynav/internal/demo"
	"github.com/lazynav-dev/lazynav/pkg/middleware"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/render"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the HTTP server hosting the demo route tree.

Endpoints:
  /         View A (eager)
  /b        View B with a lazily fetched todo
  /c        Comments list via a lazily loaded deserializer
  /metrics  Prometheus metrics
  /ws       Live updates for settled suspense regions

Examples:
  lazynav serve
  lazynav serve --port=8080 --log-level=debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, logLevel)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from lazynav.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from lazynav.json)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(port int, host string, logLevel string) error {
	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	loop := sched.NewLoop()
	loop.Start()
	defer loop.Stop()

	cache := module.NewCache(loop, logger)
	tree := router.NewTree()
	demo.Register(tree, cache, demo.Options{
		API:         demo.NewClient(cfg.API.BaseURL, cfg.APITimeout(), logger),
		ModuleDelay: cfg.ModuleDelay(),
	})

	nav := router.NewNavigator(loop, tree, cache, logger)
	nav.SetViewFallback(vdom.P(vdom.Class("loading"), "Loading..."))
	nav.Use(
		middleware.OpenTelemetry(),
		middleware.Prometheus(),
	)
	prometheus.MustRegister(middleware.NewCacheCollector(cache))

	hub := newHub(logger)
	nav.OnUpdate(hub.Broadcast)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", hub.ServeHTTP)
	r.Get("/*", pageHandler(loop, nav, logger))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	printBanner()
	info("serving on http://%s", cfg.Addr())
	info("routes: / (eager), /b (lazy), /c (lazy)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hub.Close()
	return srv.Shutdown(shutdownCtx)
}

// pageHandler navigates on the loop and renders the full document.
func pageHandler(loop *sched.Loop, nav *router.Navigator, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res *router.Result
		var err error
		loop.Do(func() { res, err = nav.Navigate(r.URL.Path) })
		if err != nil {
			logger.Warn("navigation rejected", "path", r.URL.Path, "error", err)
			http.Error(w, "invalid path", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if !res.Matched {
			w.WriteHeader(http.StatusNotFound)
		}
		page := render.Page(render.PageData{
			Title:       "lazynav",
			Body:        res.HTML,
			LiveUpdates: true,
		})
		if _, err := w.Write([]byte(page)); err != nil {
			logger.Debug("write failed", "error", err)
		}
	}
}

// newLogger builds the slog logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
