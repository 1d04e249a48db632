package hmap

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Control byte values. A set slot stores h2, which always has the high bit
// set, so empty and deleted are distinguishable from any h2 value. deleted
// is 2 rather than 1 so that no 0x0100 byte sequence can ever appear in a
// group; see [bitset.matchEmpty].
const (
	empty     = 0
	deleted   = 2
	setMask   = 0x80
	groupSize = 8

	loBits = 0x0101010101010101
	hiBits = 0x8080808080808080
)

// splitHash returns uint(hash) and uint8(hash)|setMask. The probe sequence
// masks h1 down to table size, so the full hash can be used for H1.
func splitHash(hash uint64) (h1 uint, h2 uint8) {
	return uint(hash), uint8(hash) | setMask
}

// bitset provides fast match operations over a group of 8 control bytes.
// See https://graphics.stanford.edu/~seander/bithacks.html#ZeroInWord
type bitset uint64

func newBitset(c *uint8) bitset {
	b := *(*[8]uint8)(unsafe.Pointer(c))
	return bitset(binary.LittleEndian.Uint64(b[:]))
}

// matchNotSet matches slots that are either empty or deleted.
func (s bitset) matchNotSet() match { return (match(s) & hiBits) ^ hiBits }

// matchEmpty matches empty slots. The zero-byte trick can yield false
// positives for any 0x0100 sequence, which is why [deleted] is 2: with
// control bytes restricted to {0, 2, h2 >= 0x80}, the value 1 never occurs.
func (s bitset) matchEmpty() match { return s.matchZero() }

// matchZero returns a non zero match if and only if s contains any zero byte.
func (s bitset) matchZero() match { return (match(s) - loBits) & ^match(s) & hiBits }

// matchByte matches slots whose control byte equals b. May yield false
// positives in rare byte patterns; callers compare keys anyway.
func (s bitset) matchByte(b uint8) match { return (s ^ (loBits * bitset(b))).matchZero() }

type match uint64

// next returns the offset from the start of the group to the next matching
// slot, and clears that match from m.
func (m *match) next() int {
	n := bits.TrailingZeros64(uint64(*m))
	// shift by an unsigned value to avoid internal checks for negative shift amounts
	*m &= ^(1 << uint(n))
	return n >> 3
}

// first returns the offset of the first matching slot. Does not update m.
func (m match) first() int { return bits.TrailingZeros64(uint64(m)) >> 3 }

// firstFromEnd returns the offset of the first matching slot, counting from
// the end of the group. Does not update m.
func (m match) firstFromEnd() int { return bits.LeadingZeros64(uint64(m)) >> 3 }
