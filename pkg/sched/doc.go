// Package sched provides the cooperative scheduler for lazynav.
//
// All routing state lives on a single logical execution context: a Loop
// that drains a task queue on one goroutine. "Concurrent" work in this
// model means interleaved tasks on that loop, never parallel mutation.
// Blocking work (HTTP fetches, simulated module loads) runs on ordinary
// goroutines and re-enters the loop by dispatching a task with its result.
//
// # Loop
//
//	loop := sched.NewLoop()
//	loop.Start()
//	defer loop.Stop()
//
//	loop.Dispatch(func() { /* runs on the loop */ })
//	loop.Do(func() { /* runs on the loop; Do blocks until it ran */ })
//
// # Scopes
//
// A Scope ties queued work to a lifetime, typically a route's time in the
// active chain. Cancelling a scope drops tasks dispatched through it that
// have not run yet, and cancels the scope's context so in-flight fetches
// can abort if they choose to. Cancellation is result-ignoring: work that
// already started simply has its completion task discarded.
package sched
