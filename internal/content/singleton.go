package content

import "sync"

// Singleton guards one value that is only ever read whole or replaced whole.
// Observers registered with OnChange see the new value after every Replace.
type Singleton[T any] struct {
	mu        sync.Mutex
	key       string
	value     T
	clone     func(T) T
	observers []func(T)
}

// NewSingleton builds a singleton around value. clone produces a deep copy
// and may be nil for value types without slices or maps.
func NewSingleton[T any](key string, value T, clone func(T) T) *Singleton[T] {
	return &Singleton[T]{key: key, value: value, clone: clone}
}

// Key returns the storage key this singleton persists under.
func (s *Singleton[T]) Key() string {
	return s.key
}

// OnChange registers an observer called after every Replace, outside the
// lock, with its own copy of the new value.
func (s *Singleton[T]) OnChange(fn func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// Get returns a copy of the current value.
func (s *Singleton[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copy(s.value)
}

// Replace swaps in the new value wholesale and notifies observers.
func (s *Singleton[T]) Replace(value T) {
	s.mu.Lock()

	s.value = s.copy(value)
	observers := s.observers
	snapshot := s.copy(s.value)

	s.mu.Unlock()

	for _, fn := range observers {
		fn(s.copy(snapshot))
	}
}

func (s *Singleton[T]) copy(v T) T {
	if s.clone == nil {
		return v
	}

	return s.clone(v)
}
