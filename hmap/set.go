package hmap

import (
	"github.com/dolthub/maphash"

	"github.com/db47h/prehash"
	"github.com/db47h/prehash/hash"
)

// Set is a hash set with the same hashing strategies and internals as
// [Map]. The zero value is not ready for use: create Sets with NewSet,
// NewDefaultSet or NewPreHashedSet.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

// NewSet returns a Set using the given hashing strategy.
func NewSet[K comparable](hash func(K) uint64, opts ...Option) *Set[K] {
	o := getOpts(opts)
	s := &Set[K]{}
	s.m.hash = hash
	s.m.alloc(o.capacity)
	return s
}

// NewDefaultSet returns a Set hashing keys with a seeded runtime hasher.
func NewDefaultSet[K comparable](opts ...Option) *Set[K] {
	h := maphash.NewHasher[K]()
	return NewSet[K](h.Hash, opts...)
}

// NewPreHashedSet returns a Set bound to the identity strategy; see
// [NewPreHashed].
func NewPreHashedSet[K prehash.Key](opts ...Option) *Set[K] {
	return NewSet[K](hash.Identity[K](), opts...)
}

// Add adds the given key and reports whether it was not already present.
func (s *Set[K]) Add(key K) bool {
	_, replaced := s.m.Set(key, struct{}{})
	return !replaced
}

// Contains reports whether the given key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Delete deletes the given key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int { return s.m.Len() }

// All returns an iterator over all keys. The iteration order is
// unspecified. The caller must not modify the Set while iterating.
func (s *Set[K]) All() func(yield func(K) bool) { return s.m.Keys() }
