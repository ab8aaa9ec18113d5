// Package router implements lazy route resolution for lazynav.
//
// The router defers both the code and the data a route needs until
// navigation, and loads them in parallel so the two never serialize into
// a waterfall.
//
// # Routes
//
// Routes are registered programmatically against a segment tree:
//
//	tree := router.NewTree()
//	tree.RegisterParent("/", rootLayout)   // wraps all descendants
//	tree.Register("/", viewA)              // page for /
//	tree.RegisterParent("/b", viewB)       // lazy parent for /b
//	tree.Register("/b", viewBChild)        // lazy page for /b
//
// Every route implements Route (synchronous Data at match time) plus
// either EagerRoute (render function in the main binary) or LazyRoute
// (render function in a lazily loaded view module).
//
// # Navigation
//
// A Navigator owns the active chain. On Navigate it resolves the path,
// tears down exited routes (cancelling their scopes and disposing their
// data), and for every newly entered route calls Data() and triggers the
// module load in the same synchronous turn - data readiness never blocks
// the code fetch from starting and vice versa, and parent and child
// loads are issued concurrently.
//
// Routes shared between the old and new path keep their RouteData and
// view modules untouched: only segments that actually changed are torn
// down and rebuilt.
//
// A failed data fetch or module load is scoped to the suspense boundary
// around it; no failure here aborts navigation or takes down siblings.
package router
