// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package hmap provides generic hash maps and sets with pluggable hashing
// strategies, designed around pre-hashed keys.
//
// A Map created with NewPreHashed hashes a key by reading its stored bits
// (the identity strategy), so inserts, lookups and rehashes never compute a
// hash. Its key type is constrained to prehash.Key, which rejects strings,
// slices and plain integers at compile time. Maps over arbitrary comparable
// keys are available through New (explicit strategy) and NewDefault (seeded
// runtime hasher).
//
// Maps and Sets are not safe for concurrent use.
//
// Internals: open addressing over groups of 8 control bytes matched with
// SWAR operations, quadratic probing at the group level. See
// https://abseil.io/about/design/swisstables
package hmap

import (
	"github.com/dolthub/maphash"

	"github.com/db47h/prehash"
	"github.com/db47h/prehash/hash"
)

// Map is a hash table with a pluggable hashing strategy. The zero value is
// not ready for use: create Maps with New, NewDefault or NewPreHashed.
type Map[K comparable, V any] struct {
	hash  func(K) uint64
	ctrl  []uint8
	slots []slot[K, V]
	size  int
	live  int
	dead  int
}

type slot[K comparable, V any] struct {
	key   K
	value V
}

// New returns a Map using the given hashing strategy.
func New[K comparable, V any](hash func(K) uint64, opts ...Option) *Map[K, V] {
	o := getOpts(opts)
	m := &Map[K, V]{hash: hash}
	m.alloc(o.capacity)
	return m
}

// NewDefault returns a Map hashing keys with a seeded runtime hasher. Use it
// for keys that are not pre-hashed.
func NewDefault[K comparable, V any](opts ...Option) *Map[K, V] {
	h := maphash.NewHasher[K]()
	return New[K, V](h.Hash, opts...)
}

// NewPreHashed returns a Map bound to the identity strategy: the hash of a
// key is its own Sum64, with no further mixing. The prehash.Key constraint
// restricts K to types whose Sum64 is well distributed by contract, such as
// prehash.H64.
func NewPreHashed[K prehash.Key, V any](opts ...Option) *Map[K, V] {
	return New[K, V](hash.Identity[K](), opts...)
}

func (m *Map[K, V]) alloc(sz int) {
	m.size = sz
	m.slots = make([]slot[K, V], sz+1)
	m.ctrl = make([]uint8, sz+groupSize)
	m.live = 0
	m.dead = 0
}

// Set sets the value for the given key. It returns the previous value and
// true if the key was already present, otherwise the zero value of V and
// false.
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	hash, i := m.find(key)
	if i != 0 {
		it := &m.slots[i]
		prev, it.value = it.value, value
		return prev, true
	}
	m.insert(hash, key, value)
	return prev, false
}

// Get returns the value for the given key and true if the key was found,
// otherwise the zero value of V and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if _, i := m.find(key); i != 0 {
		return m.slots[i].value, true
	}
	var zero V
	return zero, false
}

// Delete deletes the given key and returns its value and true if the key
// was found, otherwise the zero value of V and false.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	if _, i := m.find(key); i != 0 {
		v := m.slots[i].value
		m.del(i)
		return v, true
	}
	var zero V
	return zero, false
}

// All returns an iterator over all key value pairs. The iteration order is
// unspecified. The caller must not modify the Map while iterating.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for i := 1; i <= m.size; i++ {
			if m.ctrl[i]&setMask != 0 && !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys. The iteration order is
// unspecified. The caller must not modify the Map while iterating.
func (m *Map[K, V]) Keys() func(yield func(K) bool) {
	return func(yield func(K) bool) {
		for i := 1; i <= m.size; i++ {
			if m.ctrl[i]&setMask != 0 && !yield(m.slots[i].key) {
				return
			}
		}
	}
}

// Values returns an iterator over all values. The iteration order is
// unspecified. The caller must not modify the Map while iterating.
func (m *Map[K, V]) Values() func(yield func(V) bool) {
	return func(yield func(V) bool) {
		for i := 1; i <= m.size; i++ {
			if m.ctrl[i]&setMask != 0 && !yield(m.slots[i].value) {
				return
			}
		}
	}
}

// Len returns the number of entries in the Map.
func (m *Map[K, V]) Len() int { return m.live }

// Size returns the current table size.
func (m *Map[K, V]) Size() int { return m.size }

// Load returns the current load factor.
func (m *Map[K, V]) Load() float64 { return float64(m.live) / float64(m.size) }

// find returns the hash for the given key and its index in m.slots. If the
// key is not found, the returned index is 0.
func (m *Map[K, V]) find(key K) (uint64, int) {
	hash := m.hash(key)
	h1, h2 := splitHash(hash)
	for p := newProbe(h1, m.size); ; p = p.next() {
		s := newBitset(&m.ctrl[p.groupIndex()])
		for mb := s.matchByte(h2); mb != 0; {
			i := p.elementIndex(mb.next())
			// matchByte can yield false positives in rare edge cases, but this is harmless here.
			if m.slots[i].key == key {
				return hash, i
			}
		}
		if s.matchEmpty() != 0 {
			return hash, 0
		}
	}
}

func (m *Map[K, V]) insert(hash uint64, key K, value V) {
	// rehash if there are less than size/8 slots left.
	if m.size-m.live-m.dead <= m.size>>3 {
		m.rehashOrGrow()
	}
	h1, h2 := splitHash(hash)
	var i int
	for p := newProbe(h1, m.size); ; p = p.next() {
		if e := newBitset(&m.ctrl[p.groupIndex()]).matchNotSet(); e != 0 {
			i = p.elementIndex(e.next())
			break
		}
	}
	m.live++
	m.dead -= int(m.ctrl[i] >> 1) // deleted is 2, empty is 0
	m.setCtrl(i, h2)
	m.slots[i] = slot[K, V]{key: key, value: value}
}

func (m *Map[K, V]) del(i int) {
	m.slots[i] = slot[K, V]{}
	m.live--

	// If no probe window around slot i has ever been seen as a full group,
	// the slot can return to empty instead of becoming a tombstone. That is
	// the case when there is an empty slot both before and after i, less
	// than groupSize slots apart.
	if after := newBitset(&m.ctrl[i]).matchEmpty(); after != 0 {
		if before := newBitset(&m.ctrl[subModulo(i, groupSize, m.size)]).matchEmpty(); before != 0 {
			if before.firstFromEnd()+after.first() < groupSize {
				m.setCtrl(i, empty)
				return
			}
		}
	}
	m.setCtrl(i, deleted)
	m.dead++
}

func (m *Map[K, V]) rehashOrGrow() {
	sz := m.size
	// grow only when the load justifies it; otherwise rebuilding the table
	// at the same size just drops the tombstones.
	if m.live >= sz-(sz>>2) {
		sz *= 2
	}
	src := m.slots
	ctrl := m.ctrl
	m.alloc(sz)
	for i := 1; i < len(src); i++ {
		if ctrl[i]&setMask != 0 {
			it := &src[i]
			m.reinsert(m.hash(it.key), it.key, it.value)
		}
	}
}

// reinsert inserts into a freshly allocated table: no tombstones, no
// duplicate keys, enough free slots.
func (m *Map[K, V]) reinsert(hash uint64, key K, value V) {
	h1, h2 := splitHash(hash)
	for p := newProbe(h1, m.size); ; p = p.next() {
		if e := newBitset(&m.ctrl[p.groupIndex()]).matchEmpty(); e != 0 {
			i := p.elementIndex(e.next())
			m.setCtrl(i, h2)
			m.slots[i] = slot[K, V]{key: key, value: value}
			m.live++
			return
		}
	}
}

func (m *Map[K, V]) setCtrl(i int, c uint8) {
	m.ctrl[i] = c
	// the table is 1 indexed: ctrl bytes for slots [1, groupSize) are
	// replicated past the end so group reads never need bounds checks.
	if i < groupSize {
		m.ctrl[i+m.size] = c
	}
}
