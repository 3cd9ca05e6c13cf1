package robinmap

// ForEach invokes visit for every live entry in iterator order. The
// key and value arguments are borrowed references.
func (m *Map) ForEach(visit func(key, value []byte)) {
	for it := m.Iterator(); it.Valid(); it.Next() {
		visit(it.Key(), it.Value())
	}
}

// Filter returns an independent map holding copies of every entry for
// which pred is true. The result starts with the same bucket count
// and shares the source's hash, compare and release functions;
// mutating it never affects the source.
func (m *Map) Filter(pred func(key, value []byte) bool) *Map {
	out := &Map{
		buckets:      makeBuckets(len(m.buckets)),
		keySize:      m.keySize,
		valueSize:    m.valueSize,
		hash:         m.hash,
		compare:      m.compare,
		releaseKey:   m.releaseKey,
		releaseValue: m.releaseValue,
	}

	for it := m.Iterator(); it.Valid(); it.Next() {
		if pred(it.Key(), it.Value()) {
			out.Put(it.Key(), it.Value())
		}
	}

	return out
}

// Any reports whether pred holds for at least one entry,
// short-circuiting on the first match.
func (m *Map) Any(pred func(key, value []byte) bool) bool {
	for it := m.Iterator(); it.Valid(); it.Next() {
		if pred(it.Key(), it.Value()) {
			return true
		}
	}

	return false
}

// All reports whether pred holds for every entry, short-circuiting on
// the first failure. Vacuously true for an empty map.
func (m *Map) All(pred func(key, value []byte) bool) bool {
	for it := m.Iterator(); it.Valid(); it.Next() {
		if !pred(it.Key(), it.Value()) {
			return false
		}
	}

	return true
}

// Merge copies every entry of src into m, src values winning on key
// collision. src is never mutated; m may resize. Merge is not atomic:
// a failing Put (block width mismatch between the two maps) stops the
// merge immediately and leaves m partially updated.
func (m *Map) Merge(src *Map) error {
	for it := src.Iterator(); it.Valid(); it.Next() {
		if err := m.Put(it.Key(), it.Value()); err != nil {
			return err
		}
	}

	return nil
}
