package futures

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Await blocks until the future is complete then returns the result.
func Await[T any](ctx context.Context, f *Future[T]) (T, error) {
	return f.Await(ctx)
}

func Await2[A, B any](ctx context.Context, af *Future[A], bf *Future[B]) (retA A, retB B, _ error) {
	ws := [2]waiter{af, bf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, err
	}
	a, err := af.Unwrap()
	if err != nil {
		return retA, retB, err
	}
	b, err := bf.Unwrap()
	if err != nil {
		return retA, retB, err
	}
	return a, b, nil
}

func Await3[A, B, C any](ctx context.Context, af *Future[A], bf *Future[B], cf *Future[C]) (retA A, retB B, retC C, _ error) {
	ws := [3]waiter{af, bf, cf}
	if err := waitAll(ctx, ws[:]); err != nil {
		return retA, retB, retC, err
	}
	a, err := af.Unwrap()
	if err != nil {
		return retA, retB, retC, err
	}
	b, err := bf.Unwrap()
	if err != nil {
		return retA, retB, retC, err
	}
	c, err := cf.Unwrap()
	if err != nil {
		return retA, retB, retC, err
	}
	return a, b, c, nil
}

type waiter interface {
	wait(ctx context.Context) error
}

func waitAll(ctx context.Context, xs []waiter) error {
	eg, ctx := errgroup.WithContext(ctx)
	for i := range xs {
		i := i
		eg.Go(func() error { return xs[i].wait(ctx) })
	}
	return eg.Wait()
}
