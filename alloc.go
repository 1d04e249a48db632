package prehash

import "sync/atomic"

// Allocator produces a stream of pairwise-distinct [H64] values by mixing a
// running counter: the n-th Alloc of a fresh Allocator returns Mix(n-1).
//
// An Allocator is not safe for concurrent use; either serialize calls to
// Alloc externally or use [AtomicAllocator]. Note that two Allocators both
// count from 0 and therefore produce identical streams: allocation cannot
// be sharded over several plain Allocators.
//
// The zero value is ready to use.
type Allocator struct {
	next uint64
}

// NewAllocator returns an Allocator whose first Alloc returns Mix(0).
func NewAllocator() *Allocator { return new(Allocator) }

// Alloc returns the next H64 and advances the counter. The counter wraps
// after 2^64 calls and the stream repeats from the start; this is id reuse,
// not an error.
func (a *Allocator) Alloc() H64 {
	h := Mix(a.next)
	a.next++
	return h
}

// AtomicAllocator is an [Allocator] backed by an atomic counter, safe for
// concurrent use. The stream stays pairwise distinct under concurrency:
// distinctness only requires that Mix is fed distinct counter values, which
// the atomic increment guarantees.
//
// The zero value is ready to use. An AtomicAllocator must not be copied
// after first use.
type AtomicAllocator struct {
	next atomic.Uint64
}

// Alloc returns the next H64.
func (a *AtomicAllocator) Alloc() H64 {
	return Mix(a.next.Add(1) - 1)
}
