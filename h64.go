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

// Package prehash implements pre-hashed 64-bit integer keys.
//
// An [H64] stores the hash of the integer it represents instead of the
// integer itself. Hash containers keyed by H64 can use the stored bits as
// the hash value directly and skip hashing on every insert, lookup and
// rehash; see package hmap for containers bound to that identity strategy.
//
// The transform is a bijection over the full 64-bit domain: [Unmix64]
// recovers the original integer exactly, with no collisions possible between
// distinct inputs. [Allocator] produces streams of pairwise-distinct H64s
// from a running counter.
package prehash

import "strconv"

// Mixing constants. The forward pass is the 64-bit splitmix finalizer; the
// inverse constants are the multiplicative inverses of c1 and c2 modulo 2^64.
const (
	c1 = 0xBF58476D1CE4E5B9
	c2 = 0x94D049BB133111EB

	invC1 = 0x96DE1B173F119089
	invC2 = 0x319642B2D24D8EC3
)

// Mix64 maps x to a well-distributed 64-bit value. Every output bit depends
// non-linearly on many input bits, and the transform is a bijection: Unmix64
// recovers x exactly.
func Mix64(x uint64) uint64 {
	x = (x ^ x>>30) * c1
	x = (x ^ x>>27) * c2
	return x ^ x>>31
}

// Unmix64 is the inverse of Mix64. Each step of the forward pass is undone
// in reverse order: a multiply by the modular inverse of its constant, an
// xorshift by xoring with both the direct and the doubled shift.
func Unmix64(y uint64) uint64 {
	y = (y ^ y>>31 ^ y>>62) * invC2
	y = (y ^ y>>27 ^ y>>54) * invC1
	return y ^ y>>30 ^ y>>60
}

// H64 is a pre-hashed 64-bit integer.
//
// It stores the mixed form of the integer it was created from, so that a
// container using the identity hashing strategy can consume the stored bits
// without computing anything. Formatting an H64 shows the original integer,
// not the mixed bits.
//
// H64 is a small value type: copy it freely, compare it with ==. Two H64s
// are equal exactly when their revealed integers are equal.
type H64 struct {
	bits uint64
}

// Mix returns the H64 for i.
func Mix(i uint64) H64 {
	return H64{Mix64(i)}
}

// Reveal returns the integer this H64 was created from.
func (h H64) Reveal() uint64 { return Unmix64(h.bits) }

// Sum64 returns the stored mixed bits, making H64 a [Key].
func (h H64) Sum64() uint64 { return h.bits }

// String implements fmt.Stringer. The revealed integer is rendered in
// decimal; the internal bit pattern never appears in output.
func (h H64) String() string { return strconv.FormatUint(h.Reveal(), 10) }

// GoString implements fmt.GoStringer.
func (h H64) GoString() string { return "prehash.Mix(" + h.String() + ")" }

// Key is the capability required of keys hashed with the identity strategy:
// a Key carries its own hash bits. Sum64 must return a value that is already
// well distributed over the 64-bit domain, and must return equal values
// exactly for equal keys. H64 satisfies both by construction.
//
// Key is deliberately not satisfied by strings, slices or plain integers.
// Hash those with a real algorithm (see package hash) or wrap integers in
// [Uint64] when they are known to be well distributed.
type Key interface {
	comparable
	Sum64() uint64
}

// Uint64 opts a raw integer into the [Key] contract with an identity Sum64.
//
// This is an escape hatch: by converting, the caller asserts that the values
// used as keys are already well distributed, for example because they were
// produced by [Mix64] or another finalizer. Sequential or otherwise
// clustered integers used through Uint64 degrade container performance
// without any other symptom.
type Uint64 uint64

// Sum64 returns u unchanged.
func (u Uint64) Sum64() uint64 { return uint64(u) }
