// Package module provides the view-module cache for lazynav.
//
// A ViewModule is an addressable, independently loadable unit of
// rendering code keyed by a module ID. Loading is idempotent: all
// concurrent requests for one ID share a single underlying load and
// observe the same Ready/Failed outcome.
//
// The cache is process-wide and explicitly injected into the router
// (never ambient). Route exit never cancels a load in flight; the loaded
// code stays cached for future navigations and only the exited
// navigation discards its view of the result.
//
//	cache := module.NewCache(loop, logger)
//	cache.Register("view_b", loadViewB)
//
//	code := cache.Load("view_b") // *deferred.Value[module.Code]
package module
