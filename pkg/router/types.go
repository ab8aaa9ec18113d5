package router

import (
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// RouteData is the opaque, route-specific value produced synchronously at
// match time. It may embed deferred values for expensive work; computing
// it must never wait for the route's view module.
type RouteData any

// Disposer is implemented by RouteData that holds resources to release
// when its route exits the active chain.
type Disposer interface {
	Dispose()
}

// Route produces its data synchronously on enter. The scope is the
// route's lifetime in the active chain: deferred values created under it
// are cancelled (result-ignoring) when the route exits.
type Route interface {
	Data(scope *sched.Scope) RouteData
}

// LazyRoute is a Route whose render function lives in a view module that
// is loaded on demand. The module load is triggered at enter time,
// concurrently with Data().
type LazyRoute interface {
	Route
	ModuleID() module.ID
}

// EagerRoute is a Route whose render function ships in the main binary.
// outlet is the rendered child content for parent routes, nil for leaves.
type EagerRoute interface {
	Route
	Render(data RouteData, outlet *vdom.VNode) *vdom.VNode
}

// ChainEntry is one matched route in an active chain.
type ChainEntry struct {
	// Route is the matched route.
	Route Route

	// Pattern is the registered path pattern (e.g., "/users/:id").
	Pattern string

	// Key identifies this entry across navigations. It includes the
	// resolved segment values, so the same pattern matched with
	// different parameters is a different entry.
	Key string

	// Params are the extracted route parameters for the whole match.
	Params map[string]string
}

// ActiveChain is the ordered root-to-leaf list of matched routes.
type ActiveChain []ChainEntry

// RouteInfo describes a registered route, for listings.
type RouteInfo struct {
	// Pattern is the path pattern.
	Pattern string

	// Parent indicates the route wraps its descendants.
	Parent bool

	// Module is the view module ID for lazy routes, empty for eager.
	Module module.ID
}

// NavigationState is a snapshot of the navigator's current state.
type NavigationState struct {
	// Path is the current resolved path.
	Path string

	// Chain holds per-route status, root to leaf.
	Chain []RouteStatus
}

// RouteStatus is the status of one route in the active chain.
type RouteStatus struct {
	// Pattern is the route's path pattern.
	Pattern string

	// Module is the view module ID, empty for eager routes.
	Module module.ID

	// ModuleStatus is the module's loading state. Eager routes report
	// Loaded since their code ships in the main binary.
	ModuleStatus module.Status
}

// Result is the outcome of one Navigate call.
type Result struct {
	// Path is the canonicalized path that was navigated to.
	Path string

	// Matched indicates whether a route chain matched.
	Matched bool

	// HTML is the rendered output for this navigation. Pending suspense
	// regions render their fallbacks; later settlements re-render via
	// the navigator's update hook.
	HTML string
}

// Middleware processes navigations before they reach the core dispatch.
type Middleware interface {
	// Handle runs around a navigation. Call next to continue the chain;
	// return an error to stop it.
	Handle(nc *NavContext, next func() error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(nc *NavContext, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(nc *NavContext, next func() error) error {
	return f(nc, next)
}

// NavContext carries per-navigation information through the middleware
// chain. The counters are populated by the core dispatch, so middleware
// reads them after calling next.
type NavContext struct {
	// Path is the canonicalized target path.
	Path string

	// From is the previous path, empty on the first navigation.
	From string

	// Matched indicates whether a route chain matched.
	Matched bool

	// Entered is the number of routes newly entered.
	Entered int

	// Exited is the number of routes torn down.
	Exited int

	// Reused is the number of shared-prefix routes kept untouched.
	Reused int
}
