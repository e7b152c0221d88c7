package futures

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Store is a table of pending futures indexed by key, e.g. outstanding
// request IDs.  Completing a key removes it from the table; the future itself
// lives on with whoever holds it.
type Store[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]*Future[V]
}

func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		m: make(map[K]*Future[V]),
	}
}

func (s *Store[K, V]) Get(k K) *Future[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[k]
}

// GetOrCreate returns the future for k, creating it if necessary.
// The second return value is true if the future was created by this call.
func (s *Store[K, V]) GetOrCreate(k K) (*Future[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, exists := s.m[k]
	if !exists {
		f = New[V]()
		s.m[k] = f
	}
	return f, !exists
}

// SetResult completes the future at k with x and removes it from the store.
// It returns false if no future is registered at k.
func (s *Store[K, V]) SetResult(k K, x V) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fut, exists := s.m[k]
	if !exists {
		return false, nil
	}
	delete(s.m, k)
	return true, fut.SetResult(x)
}

// SetError completes the future at k with err and removes it from the store.
// It returns false if no future is registered at k.
func (s *Store[K, V]) SetError(k K, err error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fut, exists := s.m[k]
	if !exists {
		return false, nil
	}
	delete(s.m, k)
	return true, fut.SetError(err)
}

// Delete removes k from the store if it maps to f, or unconditionally when f
// is nil.  The future is not completed; abandoned waiters block until the
// producer completes it directly.
func (s *Store[K, V]) Delete(k K, f *Future[V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f2 := s.m[k]
	if f == nil || f == f2 {
		delete(s.m, k)
	}
}

func (s *Store[K, V]) ForEach(fn func(k K, f *Future[V]) bool) bool {
	s.mu.RLock()
	keys := maps.Keys(s.m)
	s.mu.RUnlock()
	for _, k := range keys {
		s.mu.RLock()
		f, exists := s.m[k]
		s.mu.RUnlock()
		if exists {
			if !fn(k, f) {
				return false
			}
		}
	}
	return true
}
