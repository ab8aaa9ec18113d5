package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lazynav-dev/lazynav/internal/errors"
)

// dataFetches counts upstream fetches by outcome.
var dataFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lazynav",
	Name:      "data_fetches_total",
	Help:      "Total upstream data fetches by status",
}, []string{"status"})

// Client fetches route data from the upstream API.
type Client struct {
	base   string
	httpc  *http.Client
	logger *slog.Logger
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		httpc:  &http.Client{Timeout: timeout},
		logger: logger.With("component", "api"),
	}
}

// GetText fetches path and returns the raw response body.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	url := c.base + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.New("E040").Wrap(err)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		dataFetches.WithLabelValues("error").Inc()
		return "", errors.New("E040").
			WithDetail("GET " + url + " failed").
			Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		dataFetches.WithLabelValues("error").Inc()
		return "", errors.New("E040").
			WithDetail(fmt.Sprintf("GET %s returned %s", url, resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		dataFetches.WithLabelValues("error").Inc()
		return "", errors.New("E040").Wrap(err)
	}
	dataFetches.WithLabelValues("ok").Inc()

	c.logger.Debug("fetched", "url", url, "bytes", len(body), "duration", time.Since(start))
	return string(body), nil
}
