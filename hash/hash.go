// Package hash provides hashing strategies for the hmap containers.
//
// Each constructor returns a func(K) uint64 usable with hmap.New. String,
// Bytes and Number return randomly seeded strategies: two strategies
// obtained from two calls hash the same input to different values. StringXX
// and BytesXX are unseeded and stable across processes. Identity is the
// pass-through strategy for pre-hashed keys.
package hash

import (
	"hash/maphash"
	"math/bits"
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/db47h/prehash"
)

var hashkey = [...]uint64{rand.Uint64(), rand.Uint64()}

// Identity returns the pass-through strategy for pre-hashed keys: the hash
// of k is k.Sum64(), with no further mixing. This is only sound because the
// prehash.Key contract guarantees well-distributed Sum64 values.
func Identity[K prehash.Key]() func(K) uint64 {
	return func(k K) uint64 { return k.Sum64() }
}

// String returns a seeded string hashing strategy backed by hash/maphash.
func String() func(string) uint64 {
	seed := maphash.MakeSeed()
	return func(s string) uint64 {
		return maphash.String(seed, s)
	}
}

// Bytes returns a seeded byte slice hashing strategy backed by hash/maphash.
func Bytes() func([]byte) uint64 {
	seed := maphash.MakeSeed()
	return func(b []byte) uint64 {
		return maphash.Bytes(seed, b)
	}
}

// StringXX returns the xxHash64 string strategy. Unlike String, it is not
// seeded, so hash values are stable across processes and runs.
func StringXX() func(string) uint64 { return xxhash.Sum64String }

// BytesXX returns the xxHash64 byte slice strategy. Not seeded.
func BytesXX() func([]byte) uint64 { return xxhash.Sum64 }

const m5 = 0x1d8e4e27c47d124f

type IntType interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~uintptr
}

// Number returns a seeded integer hashing strategy. For integers that are
// already well distributed, prefer Identity over prehash.Uint64 keys, which
// skips the mixing entirely.
func Number[T IntType]() func(v T) uint64 {
	seed := rand.Uint64()
	return func(v T) uint64 {
		a := uint64(v)
		return mix(m5^uint64(unsafe.Sizeof(v)), mix(a^hashkey[1], a^seed^hashkey[0]))
	}
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
