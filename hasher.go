package prehash

import (
	"encoding/binary"
	"hash"
)

// Hasher is a [hash.Hash64] for pre-hashed keys: Sum64 returns the value
// last passed to WriteUint64 verbatim. There is no mixing and no
// accumulation across writes; the mixing already happened once, when the key
// was created by [Mix], so repeating it on every container operation would
// be wasted work.
//
// A Hasher must only ever be fed a single pre-hashed 64-bit key. Write
// panics: hashing arbitrary bytes through the identity state is a contract
// violation, and silently falling back to a byte hash would mask the bug and
// void the performance contract.
//
// The zero value is ready to use.
type Hasher struct {
	sum uint64
}

var _ hash.Hash64 = (*Hasher)(nil)

// WriteUint64 sets the hash state to v, overwriting any previous state.
func (h *Hasher) WriteUint64(v uint64) { h.sum = v }

// Sum64 returns the state unchanged.
func (h *Hasher) Sum64() uint64 { return h.sum }

// Write panics. A Hasher only accepts pre-hashed 64-bit keys through
// WriteUint64; byte sequences must be hashed with a real algorithm.
func (h *Hasher) Write(p []byte) (int, error) {
	panic("prehash: Hasher cannot hash bytes, only pre-hashed 64-bit keys")
}

// Sum appends the big-endian state to b.
func (h *Hasher) Sum(b []byte) []byte { return binary.BigEndian.AppendUint64(b, h.sum) }

// Reset sets the state to 0.
func (h *Hasher) Reset() { h.sum = 0 }

// Size returns 8.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns 8.
func (h *Hasher) BlockSize() int { return 8 }
