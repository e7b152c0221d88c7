package futures

// Go spawns fn in a separate goroutine and returns a Future for its result.
// The goroutine is the future's producer; if something else completed the
// future first, the completion here panics.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		x, err := fn()
		var cerr error
		if err != nil {
			cerr = f.SetError(err)
		} else {
			cerr = f.SetResult(x)
		}
		if cerr != nil {
			panic(cerr)
		}
	}()
	return f
}
