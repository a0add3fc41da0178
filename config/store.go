package config

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Store holds a process-wide configuration value that is loaded exactly once
// and is read-only afterwards.
type Store[T any] struct {
	once   sync.Once
	loaded atomic.Bool
	value  T
	err    error
}

// Load runs loader on the first call and caches its outcome. Later calls
// return the cached value and error without running loader again, so a
// failed load stays failed for the life of the process.
func (s *Store[T]) Load(loader func() (T, error)) (T, error) {
	s.once.Do(func() {
		s.value, s.err = loader()
		s.loaded.Store(s.err == nil)
	})
	return s.value, s.err
}

// Get returns the loaded value. It panics when Load has not completed
// successfully; reading configuration before startup is a programming error.
func (s *Store[T]) Get() T {
	if !s.loaded.Load() {
		var zero T
		panic(fmt.Sprintf("config: %T read before a successful load", zero))
	}
	return s.value
}

// Loaded reports whether a value has been loaded successfully.
func (s *Store[T]) Loaded() bool {
	return s.loaded.Load()
}
