package sched

import (
	"context"
	"sync/atomic"
)

// Scope ties dispatched work to a lifetime. Route entries get a scope on
// "enter"; cancelling it on "exit" drops any of its tasks that have not
// run yet, so late results from an exited route never touch live state.
type Scope struct {
	loop      *Loop
	ctx       context.Context
	cancel    context.CancelFunc
	cancelled atomic.Bool
}

func newScope(l *Loop) *Scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scope{loop: l, ctx: ctx, cancel: cancel}
}

// NewScope creates a cancellable scope on this loop.
func (l *Loop) NewScope() *Scope {
	return newScope(l)
}

// Loop returns the loop this scope belongs to.
func (s *Scope) Loop() *Loop {
	return s.loop
}

// Context returns the scope's context. It is cancelled together with the
// scope, so fetchers that want a hard abort can honour ctx.Done(); those
// that don't simply finish and have their results discarded.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Cancel cancels the scope. Tasks dispatched through this scope that have
// not run yet are dropped. Idempotent.
func (s *Scope) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	s.cancel()
}

// Cancelled reports whether the scope has been cancelled.
func (s *Scope) Cancelled() bool {
	return s.cancelled.Load()
}

// Dispatch queues fn on the loop. The task is skipped if the scope was
// cancelled by the time it would run.
func (s *Scope) Dispatch(fn func()) {
	s.loop.Dispatch(func() {
		if s.cancelled.Load() {
			return
		}
		fn()
	})
}
