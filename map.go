package futures

// Map returns a future holding fn applied to x's value.
// If x fails, the returned future fails with the same error and fn never
// runs.
func Map[A, Z any](x *Future[A], fn func(A) Z) *Future[Z] {
	return Then(x, func(x *Future[A]) (ret Z, _ error) {
		a, err := x.Unwrap()
		if err != nil {
			return ret, err
		}
		return fn(a), nil
	})
}
