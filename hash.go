package robinmap

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// HashFunc computes a 32-bit hash over a key's byte representation.
// It must be deterministic across calls and across processes.
type HashFunc func(key []byte) uint32

// CompareFunc is a three-way comparison consistent with a total order
// over the key type: negative, zero or positive.
type CompareFunc func(a, b []byte) int

// xxHash32 prime constants.
const (
	prime32x1 = 2654435761
	prime32x2 = 2246822519
	prime32x3 = 3266489917
	prime32x4 = 668265263
	prime32x5 = 374761393
)

// HashBytes is the built-in hash: 32-bit xxHash with seed 0, so the
// same bytes produce the same hash in every process. Inputs of 16
// bytes or more run four interleaved accumulators; shorter inputs
// seed a single one. All paths end in the xxHash avalanche.
func HashBytes(key []byte) uint32 {
	var seed uint32
	n := len(key)

	var h uint32
	i := 0
	if n >= 16 {
		v1 := seed + prime32x1 + prime32x2
		v2 := seed + prime32x2
		v3 := seed
		v4 := seed - prime32x1

		for ; i+16 <= n; i += 16 {
			v1 = round32(v1, lane32(key, i))
			v2 = round32(v2, lane32(key, i+4))
			v3 = round32(v3, lane32(key, i+8))
			v4 = round32(v4, lane32(key, i+12))
		}

		h = bits.RotateLeft32(v1, 1) + bits.RotateLeft32(v2, 7) +
			bits.RotateLeft32(v3, 12) + bits.RotateLeft32(v4, 18)
	} else {
		h = seed + prime32x5
	}

	h += uint32(n)

	for ; i+4 <= n; i += 4 {
		h += lane32(key, i) * prime32x3
		h = bits.RotateLeft32(h, 17) * prime32x4
	}

	for ; i < n; i++ {
		h += uint32(key[i]) * prime32x5
		h = bits.RotateLeft32(h, 11) * prime32x1
	}

	h ^= h >> 15
	h *= prime32x2
	h ^= h >> 13
	h *= prime32x3
	h ^= h >> 16

	return h
}

func round32(acc, lane uint32) uint32 {
	return bits.RotateLeft32(acc+lane*prime32x2, 13) * prime32x1
}

func lane32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

// HashXX64 folds the 64-bit xxHash sum down to 32 bits. An
// alternative to HashBytes for callers already standardized on the
// 64-bit variant.
func HashXX64(key []byte) uint32 {
	s := xxhash.Sum64(key)
	return uint32(s ^ s>>32)
}

// HashString hashes a string key stored as its byte content.
func HashString(key []byte) uint32 {
	return HashBytes(key)
}

// HashInt32 hashes a 4-byte little-endian integer key.
func HashInt32(key []byte) uint32 {
	return HashBytes(key)
}

// HashInt64 hashes an 8-byte little-endian integer key.
func HashInt64(key []byte) uint32 {
	return HashBytes(key)
}

// HashPointer hashes a pointer-sized opaque handle.
func HashPointer(key []byte) uint32 {
	return HashBytes(key)
}

// CompareBytes orders byte spans lexicographically.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareString orders string keys lexicographically by content.
func CompareString(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareInt32 orders 4-byte keys by signed numeric value.
func CompareInt32(a, b []byte) int {
	x, y := BytesInt32(a), BytesInt32(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// CompareInt64 orders 8-byte keys by signed numeric value.
func CompareInt64(a, b []byte) int {
	x, y := BytesInt64(a), BytesInt64(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// ComparePointer orders pointer-sized handles by address value.
func ComparePointer(a, b []byte) int {
	x, y := BytesPointer(a), BytesPointer(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Int32Bytes encodes an int32 key block.
func Int32Bytes(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))

	return b
}

// BytesInt32 decodes an int32 key block.
func BytesInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// Int64Bytes encodes an int64 key block.
func Int64Bytes(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))

	return b
}

// BytesInt64 decodes an int64 key block.
func BytesInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

// PointerBytes encodes a pointer-sized handle block. The map never
// dereferences it; lifetime of the pointee is caller-managed.
func PointerBytes(p uintptr) []byte {
	b := make([]byte, PointerSize)
	binary.LittleEndian.PutUint64(b, uint64(p))

	return b
}

// BytesPointer decodes a pointer-sized handle block.
func BytesPointer(b []byte) uintptr {
	return uintptr(binary.LittleEndian.Uint64(b))
}

// IntBytes encodes any integer as a little-endian block of its native
// width. Handy for wiring custom integer key types into New.
func IntBytes[T constraints.Integer](v T) []byte {
	b := make([]byte, unsafe.Sizeof(v))
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}

	return b
}
