package module

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// ID identifies a loadable module.
type ID string

// Code is a loaded module's payload. View modules carry a RenderFunc;
// other module kinds (a lazily loaded deserializer, say) carry whatever
// the consumer asserts it to.
type Code any

// RenderFunc is the exported render function of a view module. data is
// the route's RouteData; outlet is the rendered child content for parent
// routes (nil for leaves).
type RenderFunc func(data any, outlet *vdom.VNode) *vdom.VNode

// Source produces a module's code. It runs off-loop and may block
// (network, disk, simulated latency); ctx is never cancelled by route
// exit since loads are cached across navigations.
type Source func(ctx context.Context) (Code, error)

// Status is the loading state of a module.
type Status int

const (
	Unloaded Status = iota // No load requested yet
	Loading                // Load in flight
	Loaded                 // Code available
	Failed                 // Load failed; outcome is cached
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case Unloaded:
		return "Unloaded"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Stats is a snapshot of cache counters.
type Stats struct {
	// Loads is the number of underlying source invocations.
	Loads int64

	// Hits is the number of Load calls answered by an already-loaded
	// module.
	Hits int64

	// Dedups is the number of Load calls that joined a load in flight.
	Dedups int64

	// Failures is the number of loads that settled Failed.
	Failures int64
}

// Cache is the process-wide module cache. Register is safe at setup
// time; Load and Status are loop-confined.
type Cache struct {
	loop    *sched.Loop
	logger  *slog.Logger
	sources map[ID]Source
	entries map[ID]*deferred.Value[Code]

	loads    atomic.Int64
	hits     atomic.Int64
	dedups   atomic.Int64
	failures atomic.Int64
}

// NewCache creates an empty module cache bound to the given loop.
func NewCache(loop *sched.Loop, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		loop:    loop,
		logger:  logger.With("component", "module_cache"),
		sources: make(map[ID]Source),
		entries: make(map[ID]*deferred.Value[Code]),
	}
}

// Register associates a module ID with its source. Registering twice for
// the same ID replaces the source but not an entry already loaded.
func (c *Cache) Register(id ID, src Source) {
	c.sources[id] = src
}

// Load returns the deferred code for id, starting the underlying load on
// first request. Concurrent requests for the same ID collapse into one
// load; every caller gets the same Value and therefore the same outcome.
func (c *Cache) Load(id ID) *deferred.Value[Code] {
	if v, ok := c.entries[id]; ok {
		if v.State() == deferred.Pending {
			c.dedups.Add(1)
		} else {
			c.hits.Add(1)
		}
		return v
	}

	src, ok := c.sources[id]
	if !ok {
		v := deferred.NewManual[Code](c.loop)
		v.Reject(fmt.Errorf("module %q: %w", id, ErrModuleNotFound))
		c.entries[id] = v
		c.failures.Add(1)
		return v
	}

	c.loads.Add(1)
	c.logger.Debug("module load started", "module", string(id))

	// Loads ride the root scope: route exit must not cancel them and
	// the outcome stays cached for future navigations.
	v := deferred.New(c.loop.RootScope(), func(ctx context.Context) (Code, error) {
		code, err := src(ctx)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", id, err)
		}
		return code, nil
	})
	v.OnSettle(c.loop.RootScope(), func() {
		if err := v.Err(); err != nil {
			c.failures.Add(1)
			c.logger.Warn("module load failed", "module", string(id), "error", err)
		} else {
			c.logger.Debug("module load finished", "module", string(id))
		}
	})
	c.entries[id] = v
	return v
}

// Status returns the loading state of id.
func (c *Cache) Status(id ID) Status {
	v, ok := c.entries[id]
	if !ok {
		return Unloaded
	}
	switch v.State() {
	case deferred.Pending:
		return Loading
	case deferred.Failed:
		return Failed
	default:
		return Loaded
	}
}

// Stats returns a snapshot of the cache counters. Safe from any
// goroutine.
func (c *Cache) Stats() Stats {
	return Stats{
		Loads:    c.loads.Load(),
		Hits:     c.hits.Load(),
		Dedups:   c.dedups.Load(),
		Failures: c.failures.Load(),
	}
}
