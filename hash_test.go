package robinmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBytes_ReferenceVectors(t *testing.T) {
	seq := make([]byte, 100)
	for i := range seq {
		seq[i] = byte(i)
	}

	tests := []struct {
		name  string
		input []byte
		want  uint32
	}{
		{"empty", []byte{}, 0x02CC5D05},
		{"one byte", []byte("a"), 0x550D7456},
		{"short", []byte("abc"), 0x32D153FF},
		{"trailing bytes", []byte("Hello, world!"), 0x31B7405D},
		{"multi block", seq, 0x7F89BA44},
		{"int32 block", Int32Bytes(42), 0x454235D1},
		{"int64 block", Int64Bytes(42), 0x8B06618D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HashBytes(tt.input))
		})
	}
}

func TestHashBytes_Deterministic(t *testing.T) {
	key := []byte("determinism check")

	first := HashBytes(key)
	for range 100 {
		require.Equal(t, first, HashBytes(key))
	}
}

func TestHashBytes_Diffusion(t *testing.T) {
	// Nearby inputs must land far apart; count collisions over a
	// dense integer range.
	seen := make(map[uint32]struct{}, 10000)
	for i := range int64(10000) {
		seen[HashBytes(Int64Bytes(i))] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(seen), 9990)
}

func TestHashXX64_Deterministic(t *testing.T) {
	key := []byte("alternative hasher")

	require.Equal(t, HashXX64(key), HashXX64(key))
	assert.NotEqual(t, HashXX64(key), HashXX64([]byte("alternative hasher!")))
}

func TestCompare_Builtins(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		assert.Zero(t, CompareBytes([]byte("abc"), []byte("abc")))
		assert.Negative(t, CompareBytes([]byte("abc"), []byte("abd")))
		assert.Positive(t, CompareBytes([]byte("b"), []byte("a")))
	})

	t.Run("int32", func(t *testing.T) {
		assert.Zero(t, CompareInt32(Int32Bytes(5), Int32Bytes(5)))
		assert.Negative(t, CompareInt32(Int32Bytes(-3), Int32Bytes(2)))
		assert.Positive(t, CompareInt32(Int32Bytes(10), Int32Bytes(-10)))
	})

	t.Run("int64", func(t *testing.T) {
		assert.Zero(t, CompareInt64(Int64Bytes(5), Int64Bytes(5)))
		assert.Negative(t, CompareInt64(Int64Bytes(-1<<40), Int64Bytes(0)))
		assert.Positive(t, CompareInt64(Int64Bytes(1<<40), Int64Bytes(1)))
	})

	t.Run("pointer", func(t *testing.T) {
		assert.Zero(t, ComparePointer(PointerBytes(0x1000), PointerBytes(0x1000)))
		assert.Negative(t, ComparePointer(PointerBytes(0x1000), PointerBytes(0x2000)))
		assert.Positive(t, ComparePointer(PointerBytes(0x2000), PointerBytes(0x1000)))
	})
}

func TestCompare_Antisymmetry(t *testing.T) {
	a, b := Int64Bytes(17), Int64Bytes(99)

	require.Equal(t, sign(CompareInt64(a, b)), -sign(CompareInt64(b, a)))
	require.Zero(t, CompareInt64(a, a))
	require.Zero(t, CompareInt64(b, b))
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestIntBytes(t *testing.T) {
	assert.Equal(t, Int32Bytes(42), IntBytes(int32(42)))
	assert.Equal(t, Int64Bytes(-7), IntBytes(int64(-7)))
	assert.Len(t, IntBytes(uint16(1)), 2)
	assert.Len(t, IntBytes(byte(1)), 1)
}

func TestBlockRoundTrips(t *testing.T) {
	assert.Equal(t, int32(-123), BytesInt32(Int32Bytes(-123)))
	assert.Equal(t, int64(1<<50), BytesInt64(Int64Bytes(1<<50)))
	assert.Equal(t, uintptr(0xCAFEBABE), BytesPointer(PointerBytes(0xCAFEBABE)))
}
