// Package robinmap implements a type-erased hash map over fixed-width
// byte blocks, using open addressing with Robin Hood displacement.
// Keys and values are opaque byte spans interpreted only through the
// hash and compare functions supplied at construction; the map always
// stores its own private copy of both, never an alias into caller
// memory. Byte slices returned by Get, iterators or projections are
// borrowed and stay valid only until the next mutation of that slot.
//
// The map is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own mutual exclusion.
package robinmap

import (
	"bytes"
	"errors"
)

var (
	// ErrNilHashFunc is returned by New when no hash function is given.
	ErrNilHashFunc = errors.New("robinmap: nil hash function")
	// ErrNilCompareFunc is returned by New when no compare function is given.
	ErrNilCompareFunc = errors.New("robinmap: nil compare function")
	// ErrKeySize reports a nil key or a key whose length does not match
	// the key width the map was constructed with.
	ErrKeySize = errors.New("robinmap: bad key size")
	// ErrValueSize reports a nil value or a value whose length does not
	// match the value width the map was constructed with.
	ErrValueSize = errors.New("robinmap: bad value size")
)

const (
	// VariableSize marks a key or value width as variable-length.
	// Blocks of any length are accepted and copied whole.
	VariableSize = 0

	// PointerSize is the width of a pointer-sized opaque handle.
	PointerSize = 8

	minCapacity    = 8
	maxLoadPercent = 75
)

// ReleaseFunc is invoked on a stored key or value block right before
// the map lets go of it (overwrite, Remove, Clear). Only needed when
// the block is itself a handle to an externally managed resource.
type ReleaseFunc func(block []byte)

// Map is a Robin Hood hash table over byte-block keys and values.
type Map struct {
	buckets []entry
	size    int

	keySize   int
	valueSize int

	hash    HashFunc
	compare CompareFunc

	releaseKey   ReleaseFunc
	releaseValue ReleaseFunc
}

type Option func(m *Map)

// WithKeyRelease installs a hook invoked on key blocks the map drops.
func WithKeyRelease(f ReleaseFunc) Option {
	return func(m *Map) {
		m.releaseKey = f
	}
}

// WithValueRelease installs a hook invoked on value blocks the map
// drops, including the old value on overwrite.
func WithValueRelease(f ReleaseFunc) Option {
	return func(m *Map) {
		m.releaseValue = f
	}
}

// New returns a map for keySize-wide keys and valueSize-wide values
// (VariableSize for either means variable-length blocks). capacity is
// rounded up to the next power of two, floor 8.
func New(capacity, keySize, valueSize int, hash HashFunc, compare CompareFunc, opts ...Option) (*Map, error) {
	if hash == nil {
		return nil, ErrNilHashFunc
	}
	if compare == nil {
		return nil, ErrNilCompareFunc
	}
	if keySize < 0 {
		return nil, ErrKeySize
	}
	if valueSize < 0 {
		return nil, ErrValueSize
	}

	m := &Map{
		buckets:   makeBuckets(normalizeCapacity(capacity)),
		keySize:   keySize,
		valueSize: valueSize,
		hash:      hash,
		compare:   compare,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// NewStringString returns a map from string keys to string values,
// both stored as their byte content.
func NewStringString(capacity int, opts ...Option) *Map {
	m, _ := New(capacity, VariableSize, VariableSize, HashString, CompareString, opts...)
	return m
}

// NewStringPointer returns a map from string keys to pointer-sized
// opaque handles.
func NewStringPointer(capacity int, opts ...Option) *Map {
	m, _ := New(capacity, VariableSize, PointerSize, HashString, CompareString, opts...)
	return m
}

// NewInt32Pointer returns a map from int32 keys to pointer-sized
// opaque handles.
func NewInt32Pointer(capacity int, opts ...Option) *Map {
	m, _ := New(capacity, 4, PointerSize, HashInt32, CompareInt32, opts...)
	return m
}

// NewInt64Pointer returns a map from int64 keys to pointer-sized
// opaque handles.
func NewInt64Pointer(capacity int, opts ...Option) *Map {
	m, _ := New(capacity, 8, PointerSize, HashInt64, CompareInt64, opts...)
	return m
}

// NewPointerPointer returns a map keyed by pointer-sized handles
// (identity order) with pointer-sized handle values.
func NewPointerPointer(capacity int, opts ...Option) *Map {
	m, _ := New(capacity, PointerSize, PointerSize, HashPointer, ComparePointer, opts...)
	return m
}

// Put stores a private copy of value under a private copy of key.
// If the key is already present its value is replaced and the size
// does not change.
func (m *Map) Put(key, value []byte) error {
	if err := m.checkKey(key); err != nil {
		return err
	}
	if err := m.checkValue(value); err != nil {
		return err
	}

	h := m.hash(key)
	if i := m.find(key, h); i >= 0 {
		e := &m.buckets[i]
		if m.releaseValue != nil {
			m.releaseValue(e.value)
		}
		e.value = bytes.Clone(value)

		return nil
	}

	m.reserve()
	m.insert(entry{key: bytes.Clone(key), value: bytes.Clone(value), hash: h})
	m.size++

	return nil
}

// PutIfAbsent inserts only when the key is missing. Returns whether
// an insertion happened; an existing entry is left untouched.
func (m *Map) PutIfAbsent(key, value []byte) (bool, error) {
	if err := m.checkKey(key); err != nil {
		return false, err
	}
	if err := m.checkValue(value); err != nil {
		return false, err
	}

	h := m.hash(key)
	if m.find(key, h) >= 0 {
		return false, nil
	}

	m.reserve()
	m.insert(entry{key: bytes.Clone(key), value: bytes.Clone(value), hash: h})
	m.size++

	return true, nil
}

// Replace overwrites the value of an existing key. Returns whether an
// entry was overwritten; a missing key inserts nothing.
func (m *Map) Replace(key, value []byte) (bool, error) {
	if err := m.checkKey(key); err != nil {
		return false, err
	}
	if err := m.checkValue(value); err != nil {
		return false, err
	}

	i := m.find(key, m.hash(key))
	if i < 0 {
		return false, nil
	}

	e := &m.buckets[i]
	if m.releaseValue != nil {
		m.releaseValue(e.value)
	}
	e.value = bytes.Clone(value)

	return true, nil
}

// Get returns a borrowed reference to the stored value.
func (m *Map) Get(key []byte) ([]byte, bool) {
	if m.checkKey(key) != nil {
		return nil, false
	}

	if i := m.find(key, m.hash(key)); i >= 0 {
		return m.buckets[i].value, true
	}

	return nil, false
}

// GetOrDefault returns the stored value, or def when the key is missing.
func (m *Map) GetOrDefault(key, def []byte) []byte {
	if v, ok := m.Get(key); ok {
		return v
	}

	return def
}

// Contains reports whether the key is present.
func (m *Map) Contains(key []byte) bool {
	if m.checkKey(key) != nil {
		return false
	}

	return m.find(key, m.hash(key)) >= 0
}

// Remove deletes the entry for key, releasing its blocks. Deletion is
// backward-shift, so no tombstones are left behind.
func (m *Map) Remove(key []byte) bool {
	if m.checkKey(key) != nil {
		return false
	}

	i := m.find(key, m.hash(key))
	if i < 0 {
		return false
	}

	m.release(&m.buckets[i])
	m.shiftBack(i)
	m.size--

	return true
}

// Clear releases every live entry and resets size to zero. The bucket
// array keeps its current length.
func (m *Map) Clear() {
	for i := range m.buckets {
		e := &m.buckets[i]
		if e.dist == emptySlot {
			continue
		}

		m.release(e)
		*e = entry{dist: emptySlot}
	}

	m.size = 0
}

// Resize grows the bucket array to hold at least capacity slots,
// rounded up to a power of two. The map never shrinks; a capacity at
// or below the current one is a no-op. Rehash order is unspecified.
func (m *Map) Resize(capacity int) {
	n := normalizeCapacity(capacity)
	if n <= len(m.buckets) {
		return
	}

	m.grow(n)
}

// Size returns the number of live entries.
func (m *Map) Size() int {
	return m.size
}

// Empty reports whether the map holds no entries.
func (m *Map) Empty() bool {
	return m.size == 0
}

// Capacity returns the current bucket count.
func (m *Map) Capacity() int {
	return len(m.buckets)
}

func (m *Map) checkKey(key []byte) error {
	if key == nil || (m.keySize != VariableSize && len(key) != m.keySize) {
		return ErrKeySize
	}

	return nil
}

func (m *Map) checkValue(value []byte) error {
	if value == nil || (m.valueSize != VariableSize && len(value) != m.valueSize) {
		return ErrValueSize
	}

	return nil
}

func (m *Map) release(e *entry) {
	if m.releaseKey != nil {
		m.releaseKey(e.key)
	}
	if m.releaseValue != nil {
		m.releaseValue(e.value)
	}
}
