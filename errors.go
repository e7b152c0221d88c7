package futures

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by AwaitTimeout when the deadline passes before the
// future completes.
var ErrTimeout = errors.New("futures: timed out waiting for completion")

// AlreadyCompletedError is returned by SetResult and SetError when the future
// has already been completed.  It indicates a bug in the producer: a future
// must be completed exactly once.
type AlreadyCompletedError struct {
	// Op is the offending call, "SetResult" or "SetError".
	Op string
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("futures: %s on already completed future", e.Op)
}

func IsErrAlreadyCompleted(err error) bool {
	target := &AlreadyCompletedError{}
	return errors.As(err, &target)
}

func IsErrTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
