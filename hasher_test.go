package prehash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/prehash"
)

func TestHasher_passthrough(t *testing.T) {
	for _, x := range testValues() {
		h := prehash.Mix(x)
		var hs prehash.Hasher
		hs.WriteUint64(h.Sum64())
		require.Equal(t, h.Sum64(), hs.Sum64())
	}
}

func TestHasher_overwrites(t *testing.T) {
	var hs prehash.Hasher
	hs.WriteUint64(prehash.Mix64(1))
	hs.WriteUint64(prehash.Mix64(2))
	// no folding across writes: the last key wins.
	require.Equal(t, prehash.Mix64(2), hs.Sum64())
}

func TestHasher_rejects_bytes(t *testing.T) {
	var hs prehash.Hasher
	require.Panics(t, func() {
		_, _ = hs.Write([]byte("mercury"))
	})
	// the panic must fire for empty input too, not return a default sum.
	require.Panics(t, func() {
		_, _ = hs.Write(nil)
	})
}

func TestHasher_Sum_Reset(t *testing.T) {
	var hs prehash.Hasher
	hs.WriteUint64(0x0102030405060708)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, hs.Sum(nil))
	require.Equal(t, 8, hs.Size())
	hs.Reset()
	require.Equal(t, uint64(0), hs.Sum64())
}
