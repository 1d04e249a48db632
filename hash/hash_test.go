package hash_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/db47h/prehash"
	"github.com/db47h/prehash/hash"
)

func TestIdentity(t *testing.T) {
	h := hash.Identity[prehash.H64]()
	for i := uint64(0); i < 1000; i++ {
		k := prehash.Mix(i)
		require.Equal(t, k.Sum64(), h(k))
	}

	hu := hash.Identity[prehash.Uint64]()
	require.Equal(t, uint64(0xdeadbeef), hu(prehash.Uint64(0xdeadbeef)))
}

func TestString_seeded(t *testing.T) {
	h1, h2 := hash.String(), hash.String()
	require.Equal(t, h1("earth"), h1("earth"))
	// two strategies carry different seeds
	require.NotEqual(t, h1("earth"), h2("earth"))
}

func TestBytes_seeded(t *testing.T) {
	h1, h2 := hash.Bytes(), hash.Bytes()
	b := []byte("earth")
	require.Equal(t, h1(b), h1(b))
	require.NotEqual(t, h1(b), h2(b))
}

func TestXX_stable(t *testing.T) {
	hs, hb := hash.StringXX(), hash.BytesXX()
	require.Equal(t, xxhash.Sum64String("earth"), hs("earth"))
	require.Equal(t, hs("earth"), hb([]byte("earth")))
}

func TestNumber(t *testing.T) {
	h1, h2 := hash.Number[int](), hash.Number[int]()
	require.Equal(t, h1(-1), h1(-1))
	require.NotEqual(t, h1(-1), h2(-1))
	require.NotEqual(t, h1(1), h1(2))
}
