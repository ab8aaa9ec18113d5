package router

import (
	"log/slog"

	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/render"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// activeEntry is one route currently in the active chain.
type activeEntry struct {
	key     string
	pattern string
	route   Route
	data    RouteData

	// scope is the route's lifetime; cancelled on exit so late results
	// from its deferred values are discarded.
	scope *sched.Scope

	// code is the route's view module value, nil for eager routes.
	// Shared with the cache: exiting the route never cancels the load.
	code     *deferred.Value[module.Code]
	moduleID module.ID
}

// Navigator owns the active chain and dispatches navigations. All
// methods except construction and configuration are loop-confined; hosts
// off the loop drive it with Loop.Do.
type Navigator struct {
	loop     *sched.Loop
	tree     *Tree
	cache    *module.Cache
	renderer *render.Renderer
	logger   *slog.Logger

	middleware   []Middleware
	notFound     func(path string) *vdom.VNode
	viewFallback *vdom.VNode
	onUpdate     func(html string)

	// version increments per navigation; settle callbacks from stale
	// navigations compare against it and bail.
	version  uint64
	path     string
	active   []*activeEntry
	navScope *sched.Scope
	awaited  map[vdom.Dependency]struct{}
	lastHTML string
}

// NewNavigator creates a navigator over the given tree and module cache.
func NewNavigator(loop *sched.Loop, tree *Tree, cache *module.Cache, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		loop:     loop,
		tree:     tree,
		cache:    cache,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   logger.With("component", "navigator"),
		notFound: func(path string) *vdom.VNode {
			return vdom.Div(vdom.Class("not-found"), vdom.Textf("Not found: %s", path))
		},
		viewFallback: vdom.Fragment(),
		navScope:     loop.NewScope(),
		awaited:      make(map[vdom.Dependency]struct{}),
	}
}

// Use appends navigation middleware.
func (n *Navigator) Use(mw ...Middleware) {
	n.middleware = append(n.middleware, mw...)
}

// SetNotFound sets the fallback renderer for unmatched paths.
func (n *Navigator) SetNotFound(fn func(path string) *vdom.VNode) {
	n.notFound = fn
}

// SetViewFallback sets the content shown for a lazy route's region while
// its view module is still loading. Defaults to an empty fragment.
func (n *Navigator) SetViewFallback(node *vdom.VNode) {
	n.viewFallback = node
}

// OnUpdate registers the hook called with fresh HTML whenever a suspense
// boundary settles and the current navigation re-renders.
func (n *Navigator) OnUpdate(fn func(html string)) {
	n.onUpdate = fn
}

// Navigate dispatches a navigation to path. Loop-confined.
func (n *Navigator) Navigate(path string) (*Result, error) {
	canonPath, err := CanonicalizePath(path)
	if err != nil {
		return nil, err
	}

	nc := &NavContext{Path: canonPath, From: n.path}
	res := &Result{Path: canonPath}
	err = runMiddleware(n.middleware, nc, func() error {
		n.dispatch(canonPath, nc, res)
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}

// dispatch is the core navigation transaction: resolve, diff, tear down,
// enter, render.
func (n *Navigator) dispatch(path string, nc *NavContext, res *Result) {
	chain, ok := n.tree.Resolve(path)
	nc.Matched = ok
	res.Matched = ok

	// Shared prefix: entries whose identity is unchanged keep their
	// RouteData and modules untouched.
	shared := 0
	for shared < len(n.active) && shared < len(chain) && n.active[shared].key == chain[shared].Key {
		shared++
	}
	nc.Reused = shared

	// Exit leaf-first: cancel the route's scope (drops its waiters and
	// discards late results) and dispose its data.
	for i := len(n.active) - 1; i >= shared; i-- {
		e := n.active[i]
		e.scope.Cancel()
		if d, ok := e.data.(Disposer); ok {
			d.Dispose()
		}
		n.logger.Debug("route exit", "pattern", e.pattern)
		nc.Exited++
	}
	n.active = n.active[:shared]

	// Enter root-to-leaf. Data() and the module load trigger happen in
	// this same synchronous turn for every entered route, before any of
	// them is awaited: no waterfall between data and code, and none
	// between parent and child.
	for _, ce := range chain[shared:] {
		e := &activeEntry{
			key:     ce.Key,
			pattern: ce.Pattern,
			route:   ce.Route,
			scope:   n.loop.NewScope(),
		}
		e.data = ce.Route.Data(e.scope)
		if lr, ok := ce.Route.(LazyRoute); ok {
			e.moduleID = lr.ModuleID()
			e.code = n.cache.Load(e.moduleID)
		}
		n.active = append(n.active, e)
		n.logger.Debug("route enter", "pattern", e.pattern, "module", string(e.moduleID))
		nc.Entered++
	}

	n.path = path
	n.version++
	n.navScope.Cancel()
	n.navScope = n.loop.NewScope()
	n.awaited = make(map[vdom.Dependency]struct{})

	res.HTML = n.renderCurrent()
	n.logger.Info("navigated",
		"path", path,
		"matched", ok,
		"entered", nc.Entered,
		"exited", nc.Exited,
		"reused", nc.Reused)
}

// renderCurrent renders the active chain and re-arms waiters on every
// still-pending dependency so settlements trigger a re-render.
func (n *Navigator) renderCurrent() string {
	tree := n.buildTree()
	html, err := n.renderer.RenderToString(tree)
	if err != nil {
		n.logger.Error("render failed", "path", n.path, "error", err)
	}
	n.lastHTML = html

	version := n.version
	for _, dep := range vdom.CollectDependencies(tree) {
		if dep.State() != deferred.Pending {
			continue
		}
		if _, seen := n.awaited[dep]; seen {
			continue
		}
		n.awaited[dep] = struct{}{}
		dep.OnSettle(n.navScope, func() {
			if n.version != version {
				return
			}
			html := n.renderCurrent()
			if n.onUpdate != nil {
				n.onUpdate(html)
			}
		})
	}
	return html
}

// buildTree composes the active chain leaf-to-root, threading each
// route's rendered content through its parent's outlet.
func (n *Navigator) buildTree() *vdom.VNode {
	if len(n.active) == 0 {
		return n.notFound(n.path)
	}
	var outlet *vdom.VNode
	for i := len(n.active) - 1; i >= 0; i-- {
		outlet = n.renderEntry(n.active[i], outlet)
	}
	return outlet
}

// renderEntry renders one chain entry. Lazy routes render as a suspense
// boundary over their module value: fallback while the code loads, the
// module's render function once loaded, an error region if the load
// failed.
func (n *Navigator) renderEntry(e *activeEntry, outlet *vdom.VNode) *vdom.VNode {
	if e.code == nil {
		return e.route.(EagerRoute).Render(e.data, outlet)
	}
	return vdom.Suspense(n.viewFallback, func() *vdom.VNode {
		code, _ := e.code.Get()
		fn, err := module.AsRenderFunc(code)
		if err != nil {
			return vdom.Div(vdom.Class("module-error"), vdom.Textf("Error: %v", err))
		}
		return fn(e.data, outlet)
	}, e.code)
}

// LastHTML returns the most recently rendered output. Loop-confined.
func (n *Navigator) LastHTML() string {
	return n.lastHTML
}

// State returns a snapshot of the current navigation. Loop-confined.
func (n *Navigator) State() NavigationState {
	state := NavigationState{Path: n.path}
	for _, e := range n.active {
		rs := RouteStatus{Pattern: e.pattern, Module: e.moduleID}
		if e.code == nil {
			rs.ModuleStatus = module.Loaded
		} else {
			rs.ModuleStatus = n.cache.Status(e.moduleID)
		}
		state.Chain = append(state.Chain, rs)
	}
	return state
}
