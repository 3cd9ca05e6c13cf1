package robinmap

// Iterator is a restartable cursor over a map's live entries in
// physical slot order. Order is unspecified and changes across
// resizes. Mutating the map between iteration steps leaves the
// iterator undefined; this is a hard precondition, not detected.
//
// The zero cursor positions on the first live entry at construction,
// so Key and Value are usable immediately when Valid reports true.
// Iterator holds no heap state of its own.
type Iterator struct {
	m      *Map
	cursor int
}

// Iterator returns a cursor positioned on the first live entry, if any.
func (m *Map) Iterator() Iterator {
	return Iterator{m: m, cursor: m.scanFrom(0)}
}

// scanFrom returns the index of the first live slot at or after i, or -1.
func (m *Map) scanFrom(i int) int {
	for ; i < len(m.buckets); i++ {
		if m.buckets[i].dist != emptySlot {
			return i
		}
	}

	return -1
}

// Valid reports whether the cursor rests on a live entry. Once the
// scan runs off the end the iterator is terminal; it never wraps.
func (it *Iterator) Valid() bool {
	return it.cursor >= 0
}

// HasNext looks ahead for a further live entry without moving the cursor.
func (it *Iterator) HasNext() bool {
	return it.Valid() && it.m.scanFrom(it.cursor+1) >= 0
}

// Next advances to the next live entry, reporting whether one exists.
func (it *Iterator) Next() bool {
	if !it.Valid() {
		return false
	}

	it.cursor = it.m.scanFrom(it.cursor + 1)

	return it.Valid()
}

// Key returns a borrowed reference to the current entry's key, or nil
// when the iterator is exhausted.
func (it *Iterator) Key() []byte {
	if !it.Valid() {
		return nil
	}

	return it.m.buckets[it.cursor].key
}

// Value returns a borrowed reference to the current entry's value, or
// nil when the iterator is exhausted.
func (it *Iterator) Value() []byte {
	if !it.Valid() {
		return nil
	}

	return it.m.buckets[it.cursor].value
}

// Reset rewinds the cursor to the first live entry.
func (it *Iterator) Reset() {
	it.cursor = it.m.scanFrom(0)
}
