package deferred

import (
	"context"

	"github.com/lazynav-dev/lazynav/pkg/sched"
)

// State is the lifecycle state of a Value.
type State int

const (
	Pending State = iota // Not yet settled
	Ready                // Settled with a value
	Failed               // Settled with an error
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// waiter is a consumer suspended on a pending value.
type waiter struct {
	scope *sched.Scope
	fn    func()
}

// Value is a deferred value. All fields are loop-confined: they are only
// touched by tasks running on the loop, so no locking is needed.
type Value[T any] struct {
	loop    *sched.Loop
	state   State
	val     T
	err     error
	waiters []waiter
}

// New creates a Value whose result is produced by fn on its own
// goroutine. The settlement is dispatched through scope: if the scope is
// cancelled before the result arrives, the result is discarded and the
// value stays Pending (result-ignoring cancellation). fn receives the
// scope's context so it may honour a hard abort if it wants to.
func New[T any](scope *sched.Scope, fn func(ctx context.Context) (T, error)) *Value[T] {
	v := &Value[T]{loop: scope.Loop()}
	ctx := scope.Context()
	go func() {
		val, err := fn(ctx)
		scope.Dispatch(func() {
			if err != nil {
				v.Reject(err)
			} else {
				v.Resolve(val)
			}
		})
	}()
	return v
}

// NewManual creates a Value settled later via Resolve or Reject.
func NewManual[T any](loop *sched.Loop) *Value[T] {
	return &Value[T]{loop: loop}
}

// State returns the current state.
func (v *Value[T]) State() State {
	return v.state
}

// Get returns the settled value and error. Before settlement it returns
// the zero value and nil; callers gate on State.
func (v *Value[T]) Get() (T, error) {
	return v.val, v.err
}

// Err returns the settlement error, nil unless Failed.
func (v *Value[T]) Err() error {
	return v.err
}

// Resolve settles the value as Ready. A settled value never reverts;
// further Resolve/Reject calls are ignored.
func (v *Value[T]) Resolve(val T) {
	if v.state != Pending {
		return
	}
	v.state = Ready
	v.val = val
	v.notify()
}

// Reject settles the value as Failed.
func (v *Value[T]) Reject(err error) {
	if v.state != Pending {
		return
	}
	v.state = Failed
	v.err = err
	v.notify()
}

// notify resumes all waiters. Each resumes as its own loop task through
// the waiter's scope, so waiters of exited routes are dropped.
func (v *Value[T]) notify() {
	waiters := v.waiters
	v.waiters = nil
	for _, w := range waiters {
		w.scope.Dispatch(w.fn)
	}
}

// Await registers fn to run on the loop once the value settles. If the
// value is already settled, fn still runs asynchronously as a fresh loop
// task. fn is dropped if scope is cancelled before the value settles.
func (v *Value[T]) Await(scope *sched.Scope, fn func(T, error)) {
	resume := func() { fn(v.val, v.err) }
	if v.state != Pending {
		scope.Dispatch(resume)
		return
	}
	v.waiters = append(v.waiters, waiter{scope: scope, fn: resume})
}

// OnSettle is Await without the value, for consumers that only need the
// settlement signal (suspense boundaries re-render and read states then).
func (v *Value[T]) OnSettle(scope *sched.Scope, fn func()) {
	v.Await(scope, func(T, error) { fn() })
}

// Wait blocks the calling goroutine until the value settles or ctx is
// done. It is the bridge for off-loop code (data fetchers composing
// multiple async steps); never call it from the loop itself.
func (v *Value[T]) Wait(ctx context.Context) (T, error) {
	done := make(chan struct{})
	var val T
	var err error
	v.loop.Dispatch(func() {
		v.Await(v.loop.RootScope(), func(t T, e error) {
			val, err = t, e
			close(done)
		})
	})
	select {
	case <-done:
		return val, err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
