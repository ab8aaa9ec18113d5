// Package deferred provides DeferredValue, the async primitive behind
// lazy route data and suspense boundaries.
//
// A Value[T] represents a computation that may not have completed yet.
// It moves Pending → Ready | Failed exactly once and never reverts. Any
// number of consumers may await it; each waiter is resumed once on the
// cooperative loop when the value settles.
//
//	data := deferred.New(scope, func(ctx context.Context) (string, error) {
//	    return api.GetText(ctx, "/todos/1")
//	})
//
//	data.Await(scope, func(s string, err error) {
//	    // runs on the loop after the fetch settles
//	})
//
// Cancellation follows the scope the producer or waiter was bound to:
// cancelling the producing scope discards the result entirely (the value
// stays Pending forever), and cancelling a waiter's scope drops just that
// waiter. Failures are delivered only to awaiting consumers, never raised
// out of navigation.
//
// All methods except Wait are loop-confined.
package deferred
