package incremental

import (
	"sync"

	"github.com/google/go-cmp/cmp"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Version identifies one observed state of a Provider.
type Version uint64

// Provider is a typed, change-tracked accessor.
type Provider[T any] interface {
	// Current returns the value and the version it belongs to.
	Current() (T, Version)
}

// DefaultHistory is how many distinct past values a Source remembers.
const DefaultHistory = 8

// Source is a Provider the host writes to. It remembers the versions of its
// most recent distinct values, so setting a value it held shortly before
// restores that value's version instead of minting a new one.
type Source[T any] struct {
	mu      sync.RWMutex
	value   T
	version Version
	next    Version
	history *lru.Cache[Version, T]
	equal   func(a, b T) bool
}

// NewSource creates a Source holding initial.
func NewSource[T any](initial T) *Source[T] {
	history, err := lru.New[Version, T](DefaultHistory)
	if err != nil {
		panic(err)
	}
	s := &Source[T]{
		value:   initial,
		version: 1,
		next:    2,
		history: history,
		equal:   func(a, b T) bool { return cmp.Equal(a, b) },
	}
	s.history.Add(s.version, initial)
	return s
}

// Current implements Provider.
func (s *Source[T]) Current() (T, Version) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.version
}

// Set replaces the value and reports whether it changed. A structurally
// equal value leaves the version untouched.
func (s *Source[T]) Set(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.equal(s.value, v) {
		return false
	}

	s.value = v
	for _, ver := range s.history.Keys() {
		if old, ok := s.history.Peek(ver); ok && s.equal(old, v) {
			s.version = ver
			s.history.Get(ver)
			return true
		}
	}
	s.version = s.next
	s.next++
	s.history.Add(s.version, v)
	return true
}

// selected is the Provider returned by Select.
type selected[T, R any] struct {
	mu       sync.Mutex
	upstream Provider[T]
	fn       func(T) R
	equal    func(a, b R) bool

	seen    Version // upstream version value was computed from
	primed  bool
	value   R
	version Version
}

// Select derives a Provider by applying fn to the upstream value. fn runs
// at most once per upstream version.
func Select[T, R any](upstream Provider[T], fn func(T) R) Provider[R] {
	return &selected[T, R]{
		upstream: upstream,
		fn:       fn,
		equal:    func(a, b R) bool { return cmp.Equal(a, b) },
	}
}

// Current implements Provider.
func (s *selected[T, R]) Current() (R, Version) {
	in, inVersion := s.upstream.Current()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.primed && inVersion == s.seen {
		return s.value, s.version
	}

	out := s.fn(in)
	if !s.primed || !s.equal(s.value, out) {
		s.value = out
		s.version++
	}
	s.seen = inVersion
	s.primed = true
	return s.value, s.version
}
