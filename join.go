package futures

import "sync/atomic"

type pair[L, R any] struct {
	Left  L
	Right R
}

func newPair[L, R any](l L, r R) pair[L, R] {
	return pair[L, R]{Left: l, Right: r}
}

// Join2 takes 2 futures of different types and a merging function fn.
// Join2 returns a future containing the result of fn(a, b), where a is the
// value in afut, and b is the value in bfut.  It completes once both inputs
// have completed; if either input failed, it fails with afut's error first if
// there is one, otherwise bfut's.
func Join2[A, B, Z any](afut *Future[A], bfut *Future[B], fn func(A, B) Z) *Future[Z] {
	child := New[Z]()
	var remaining int32 = 2
	merge := func() {
		if atomic.AddInt32(&remaining, -1) != 0 {
			return
		}
		a, err := afut.Unwrap()
		if err != nil {
			fail(child, err)
			return
		}
		b, err := bfut.Unwrap()
		if err != nil {
			fail(child, err)
			return
		}
		succeed(child, fn(a, b))
	}
	afut.AddCallback(func(*Future[A]) { merge() })
	bfut.AddCallback(func(*Future[B]) { merge() })
	return child
}

func Join3[A, B, C, Z any](a *Future[A], b *Future[B], c *Future[C], fn func(A, B, C) Z) *Future[Z] {
	return Join2(Join2(a, b, newPair[A, B]), c, func(p pair[A, B], c C) Z {
		return fn(p.Left, p.Right, c)
	})
}

func Join4[A, B, C, D, Z any](a *Future[A], b *Future[B], c *Future[C], d *Future[D], fn func(A, B, C, D) Z) *Future[Z] {
	return Join2(Join2(a, b, newPair[A, B]), Join2(c, d, newPair[C, D]), func(l pair[A, B], r pair[C, D]) Z {
		return fn(l.Left, l.Right, r.Left, r.Right)
	})
}
