package hmap

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_splitHash(t *testing.T) {
	const hash = 0x1122334455667718
	h1, h2 := splitHash(hash)
	require.Equal(t, uint(0x1122334455667718), h1)
	require.Equal(t, uint8(0x18|setMask), h2)
}

func Test_newBitset(t *testing.T) {
	cs := make([]uint8, groupSize*2)
	for i := range cs {
		cs[i] = uint8(i) + 1
	}
	for i := range groupSize {
		expected := bitset(binary.LittleEndian.Uint64(cs[i:]))
		require.Equal(t, expected, newBitset(&cs[i]))
	}
}

func Test_bitset_matchByte(t *testing.T) {
	cs := make([]uint8, groupSize)
	for i := range cs {
		cs[i] = 0x90
	}
	cs[2], cs[5] = 0xAB, 0xAB
	m := newBitset(&cs[0]).matchByte(0xAB)
	require.NotZero(t, m)
	require.Equal(t, 2, m.next())
	require.Equal(t, 5, m.next())
	require.Zero(t, m)

	require.Zero(t, newBitset(&cs[0]).matchByte(0xCD))
}

func Test_bitset_matchEmpty(t *testing.T) {
	cs := make([]uint8, groupSize)
	for i := range cs {
		cs[i] = 0x90
	}
	cs[3] = empty
	cs[6] = deleted
	m := newBitset(&cs[0]).matchEmpty()
	require.NotZero(t, m)
	require.Equal(t, 3, m.next())
	// deleted is not empty
	require.Zero(t, m)
}

func Test_bitset_matchNotSet(t *testing.T) {
	cs := make([]uint8, groupSize)
	for i := range cs {
		cs[i] = 0x90
	}
	cs[3] = empty
	cs[6] = deleted
	m := newBitset(&cs[0]).matchNotSet()
	require.NotZero(t, m)
	require.Equal(t, 3, m.next())
	require.Equal(t, 6, m.next())
	require.Zero(t, m)
}

func Test_match_first(t *testing.T) {
	cs := make([]uint8, groupSize)
	for i := range cs {
		cs[i] = 0x90
	}
	cs[1] = empty
	cs[6] = empty
	m := newBitset(&cs[0]).matchEmpty()
	require.Equal(t, 1, m.first())
	require.Equal(t, groupSize-1-6, m.firstFromEnd())
}
