package futures

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

type timeoutConfig struct {
	clock clockwork.Clock
}

type TimeoutOption func(*timeoutConfig)

// WithClock sets the clock used to arm the deadline.  Tests pass a
// clockwork.FakeClock.
func WithClock(clock clockwork.Clock) TimeoutOption {
	return func(c *timeoutConfig) {
		c.clock = clock
	}
}

// AwaitTimeout is Await with a deadline.  If d elapses before the future
// completes, it returns ErrTimeout; the future stays pending and can still be
// awaited again.
func AwaitTimeout[T any](ctx context.Context, f *Future[T], d time.Duration, opts ...TimeoutOption) (ret T, _ error) {
	cfg := timeoutConfig{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&cfg)
	}
	select {
	case <-ctx.Done():
		return ret, ctx.Err()
	case <-f.done:
		return f.value, f.err
	case <-cfg.clock.After(d):
		return ret, ErrTimeout
	}
}
