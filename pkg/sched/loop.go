package sched

import (
	"sync"
)

// Loop is a single-threaded cooperative task loop.
//
// Tasks are run strictly in dispatch order on one goroutine. All methods
// are safe to call from any goroutine; the tasks themselves must only
// touch loop-confined state.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	stopped bool
	started bool

	root *Scope
}

// NewLoop creates a new loop. Call Start to begin processing tasks, or
// drive the loop manually with Drain (single-goroutine hosts and tests).
func NewLoop() *Loop {
	l := &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	l.root = newScope(l)
	return l
}

// Start launches the loop goroutine.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	go l.run()
}

// Stop stops the loop. Tasks already dequeued finish; queued tasks that
// have not run yet are discarded. Stop is idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	l.queue = nil
	l.mu.Unlock()

	close(l.done)
}

// Dispatch queues fn to run on the loop. Dispatch after Stop is a no-op.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Do queues fn and blocks until it has run (or the loop stopped).
// Must not be called from a task already running on the loop: the loop
// cannot drain itself while the caller waits.
func (l *Loop) Do(fn func()) {
	ran := make(chan struct{})
	l.Dispatch(func() {
		defer close(ran)
		fn()
	})
	select {
	case <-ran:
	case <-l.done:
	}
}

// Drain runs queued tasks on the calling goroutine until the queue is
// empty. Only for hosts that never called Start; mixing Drain with a
// running loop goroutine is a race.
func (l *Loop) Drain() {
	for {
		task := l.pop()
		if task == nil {
			return
		}
		task()
	}
}

// RootScope returns the loop's root scope. It lives for the lifetime of
// the loop and is never cancelled; module loads and other process-wide
// work dispatch through it.
func (l *Loop) RootScope() *Scope {
	return l.root
}

// run is the loop goroutine body.
func (l *Loop) run() {
	for {
		task := l.pop()
		if task != nil {
			task()
			continue
		}
		select {
		case <-l.wake:
		case <-l.done:
			return
		}
	}
}

// pop dequeues the next task, or nil if the queue is empty.
func (l *Loop) pop() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil
	}
	task := l.queue[0]
	l.queue = l.queue[1:]
	return task
}
