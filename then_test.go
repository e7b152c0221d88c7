package futures

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThen(t *testing.T) {
	f := New[int]()
	child := Then(f, func(f *Future[int]) (string, error) {
		x, err := f.Unwrap()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(x), nil
	})
	require.False(t, child.IsDone())

	require.NoError(t, f.SetResult(123))
	s, err := child.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, "123", s)
}

func TestThenAfterCompletion(t *testing.T) {
	f := NewSuccess(5)
	child := Then(f, func(f *Future[int]) (int, error) {
		x, err := f.Unwrap()
		return x * 2, err
	})
	// the callback ran inline, so the child is already complete
	require.True(t, child.IsDone())
	x, err := child.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, x)
}

func TestThenOrder(t *testing.T) {
	f := New[int]()
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		Then(f, func(*Future[int]) (struct{}, error) {
			order = append(order, i)
			return struct{}{}, nil
		})
	}
	require.NoError(t, f.SetResult(0))
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestThenErrorPropagation(t *testing.T) {
	boom := errors.New("boom")
	f := New[int]()
	c1 := Then(f, func(f *Future[int]) (int, error) {
		x, err := f.Unwrap()
		if err != nil {
			return 0, err
		}
		return x + 1, nil
	})
	c2 := Then(c1, func(f *Future[int]) (int, error) {
		x, err := f.Unwrap()
		if err != nil {
			return 0, err
		}
		return x + 1, nil
	})
	require.NoError(t, f.SetError(boom))
	_, err := c1.Await(ctx)
	require.ErrorIs(t, err, boom)
	_, err = c2.Await(ctx)
	require.ErrorIs(t, err, boom)
}

func TestThenErrorRecovery(t *testing.T) {
	boom := errors.New("boom")
	f := NewFailure[int](boom)
	child := Then(f, func(f *Future[int]) (int, error) {
		_, err := f.Unwrap()
		if err != nil {
			return -1, nil // handled
		}
		return 0, errors.New("expected a failed parent")
	})
	x, err := child.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, -1, x)
}

func TestThenCallbackError(t *testing.T) {
	boom := errors.New("boom")
	f := New[int]()
	c1 := Then(f, func(*Future[int]) (int, error) {
		return 0, boom
	})
	c2 := Then(c1, func(f *Future[int]) (int, error) {
		x, err := f.Unwrap()
		return x, err
	})
	require.NoError(t, f.SetResult(1))
	_, err := c1.Await(ctx)
	require.ErrorIs(t, err, boom)
	_, err = c2.Await(ctx)
	require.ErrorIs(t, err, boom)
}

func TestThenCallbackPanic(t *testing.T) {
	f := New[int]()
	child := Then(f, func(*Future[int]) (int, error) {
		panic("kaboom")
	})
	// the panic becomes the child's error instead of escaping
	require.NoError(t, f.SetResult(1))
	_, err := child.Await(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kaboom")
}

func TestThenChildCompletedElsewhere(t *testing.T) {
	f := New[int]()
	child := Then(f, func(f *Future[int]) (int, error) {
		x, err := f.Unwrap()
		return x + 1, err
	})
	// the wrapper owns the child; completing it out from under the wrapper
	// breaks single assignment, and the notifier must not swallow that
	require.NoError(t, child.SetResult(99))
	require.Panics(t, func() { _ = f.SetResult(1) })

	// the child's first completion is intact
	x, err := child.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, 99, x)
}

func TestMap(t *testing.T) {
	f := New[int]()
	m := Map(f, strconv.Itoa)
	require.NoError(t, f.SetResult(42))
	s, err := m.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, "42", s)

	boom := errors.New("boom")
	m2 := Map(NewFailure[int](boom), strconv.Itoa)
	_, err = m2.Await(ctx)
	require.ErrorIs(t, err, boom)
}
