package futures

import (
	"context"
	"sync/atomic"
)

// CollectSlice converts a slice of Futures of type T to a single future of a
// slice of type T.  The collected future completes once every input has
// completed.  If any input failed, it fails with the lowest-index error.
func CollectSlice[T any](futs []*Future[T]) *Future[[]T] {
	child := New[[]T]()
	if len(futs) == 0 {
		succeed(child, []T{})
		return child
	}
	remaining := int32(len(futs))
	collect := func() {
		if atomic.AddInt32(&remaining, -1) != 0 {
			return
		}
		ys := make([]T, len(futs))
		for i := range futs {
			y, err := futs[i].Unwrap()
			if err != nil {
				fail(child, err)
				return
			}
			ys[i] = y
		}
		succeed(child, ys)
	}
	for _, fut := range futs {
		fut.AddCallback(func(*Future[T]) { collect() })
	}
	return child
}

// WaitAll blocks until every future in futs is complete, successfully or not.
// It returns an error only if ctx expires first.
func WaitAll[T any](ctx context.Context, futs []*Future[T]) error {
	ws := make([]waiter, len(futs))
	for i := range ws {
		ws[i] = futs[i]
	}
	return waitAll(ctx, ws)
}
