package futures

// NewSuccess returns a future which has already succeeded with x
func NewSuccess[T any](x T) *Future[T] {
	f := New[T]()
	f.value = x
	f.state = stateValue
	close(f.done)
	return f
}

// NewFailure returns a future which has already failed with err
func NewFailure[T any](err error) *Future[T] {
	f := New[T]()
	f.err = err
	f.state = stateError
	close(f.done)
	return f
}
