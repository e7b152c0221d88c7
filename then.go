package futures

import (
	"github.com/pkg/errors"
)

// fatalError marks a panic which must not be swallowed by the notifier's
// recover: the library completed a child future it owns and found it already
// completed, which means the single-assignment invariant is broken.
type fatalError struct {
	err error
}

// Then registers fn to run once f completes, and returns a future for fn's
// result.  fn receives f itself, already complete, and reads the outcome with
// Unwrap; errors are not filtered out before fn runs, so fn can observe and
// recover from a failed parent.
//
// fn runs on the goroutine that completes f, or inline on the caller when f
// is already complete; Then itself never blocks.  An error returned by fn, or
// a panic raised by it, fails the child future instead of escaping into the
// notifying goroutine.
func Then[T, U any](f *Future[T], fn func(*Future[T]) (U, error)) *Future[U] {
	child := New[U]()
	f.AddCallback(func(f *Future[T]) {
		y, err := protect(f, fn)
		if err != nil {
			fail(child, err)
		} else {
			succeed(child, y)
		}
	})
	return child
}

// protect invokes fn, converting a panic into an error.
func protect[T, U any](f *Future[T], fn func(*Future[T]) (U, error)) (ret U, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("futures: callback panicked: %v", r)
		}
	}()
	return fn(f)
}

// succeed completes a library-owned future.  Nothing else holds a reference
// that could complete it, so a second completion here is fatal.
func succeed[T any](f *Future[T], x T) {
	if err := f.SetResult(x); err != nil {
		panic(fatalError{err: err})
	}
}

func fail[T any](f *Future[T], err error) {
	if cerr := f.SetError(err); cerr != nil {
		panic(fatalError{err: cerr})
	}
}
