package futures

import (
	"context"
	"sync"
)

type state uint8

const (
	statePending state = iota
	stateValue
	stateError
)

// Future is a single-assignment container for the eventual result of an
// operation which could fail.
//
// A Future starts out pending.  The producer completes it exactly once with
// either SetResult or SetError; every consumer then observes the same value
// or error, through Await, Unwrap, or an attached callback.
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	state     state
	value     T
	err       error
	callbacks []func(*Future[T])
	next      int
	notifying bool
}

// New returns a pending Future with no callbacks attached.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// SetResult completes the future with x, wakes every blocked Await, and runs
// the attached callbacks in registration order.
//
// Completing a future twice is a bug in the producer.  The second completion
// returns an *AlreadyCompletedError and the first result is left intact.
func (f *Future[T]) SetResult(x T) error {
	f.mu.Lock()
	if f.state != statePending {
		f.mu.Unlock()
		return &AlreadyCompletedError{Op: "SetResult"}
	}
	f.value = x
	f.state = stateValue
	// closing done publishes value and state to waiters and callbacks
	close(f.done)
	f.notify()
	return nil
}

// SetError completes the future with err.
// Same contract as SetResult, including firing every callback; a callback
// that cares about the outcome reads it with Unwrap.
func (f *Future[T]) SetError(err error) error {
	f.mu.Lock()
	if f.state != statePending {
		f.mu.Unlock()
		return &AlreadyCompletedError{Op: "SetError"}
	}
	f.err = err
	f.state = stateError
	close(f.done)
	f.notify()
	return nil
}

// Await blocks until the future is complete, then returns the result.
// If the producer failed the future, Await returns the producer's error
// unaltered, on every call, to every caller.
// If ctx expires first, Await returns ctx.Err(); the future is unaffected.
func (f *Future[T]) Await(ctx context.Context) (ret T, _ error) {
	select {
	case <-ctx.Done():
		return ret, ctx.Err()
	case <-f.done:
		return f.value, f.err
	}
}

// Unwrap returns the result without blocking.
// It panics if the future is still pending.  Inside a callback the future is
// always complete, so callbacks use Unwrap to read the outcome.
func (f *Future[T]) Unwrap() (T, error) {
	if !f.IsDone() {
		panic("futures: Unwrap called on pending future")
	}
	return f.value, f.err
}

// IsDone returns whether the future is complete.  It does not block.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[T]) IsSuccess() bool {
	return f.IsDone() && f.err == nil
}

func (f *Future[T]) IsFailure() bool {
	return f.IsDone() && f.err != nil
}

// AddCallback appends cb to the future's callback sequence.
// Every callback runs exactly once, in registration order, with the future
// itself as argument.  Callbacks registered while the future is pending run
// on the goroutine that completes it.  A callback registered after completion
// runs immediately, after all callbacks registered ahead of it: on the adding
// goroutine, or on a notifier still draining the queue.  A panicking callback
// is recovered and logged, and notification continues with the next one.
func (f *Future[T]) AddCallback(cb func(*Future[T])) {
	f.mu.Lock()
	f.callbacks = append(f.callbacks, cb)
	if f.state == statePending {
		f.mu.Unlock()
		return
	}
	f.notify()
}

// notify drains the callback queue in registration order.
// The caller must hold f.mu; notify releases it.
// At most one goroutine notifies at a time.  Callbacks appended while the
// drain is running are picked up by the active notifier, which is what keeps
// the global order equal to registration order.
func (f *Future[T]) notify() {
	if f.notifying {
		f.mu.Unlock()
		return
	}
	f.notifying = true
	for f.next < len(f.callbacks) {
		cb := f.callbacks[f.next]
		f.next++
		f.mu.Unlock()
		f.invoke(cb)
		f.mu.Lock()
	}
	f.notifying = false
	f.mu.Unlock()
}

func (f *Future[T]) invoke(cb func(*Future[T])) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fe, ok := r.(fatalError); ok {
			// broken single-assignment invariant, do not continue
			panic(fe.err)
		}
		log.Errorf("futures: callback panicked: %v", r)
	}()
	cb(f)
}

// wait blocks until the future is complete.
// wait only returns errors from the context, never the result error.
func (f *Future[T]) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.done:
		return nil
	}
}
