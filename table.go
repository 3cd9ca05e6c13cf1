package robinmap

// emptySlot in the dist field marks a bucket that holds no entry.
// Backward-shift deletion keeps slot state two-valued, so there is no
// tombstone marker to probe through.
const emptySlot = -1

// entry owns private copies of one key and one value, plus the cached
// hash and the probe distance: how many buckets past the hash's ideal
// bucket the entry currently sits.
type entry struct {
	key   []byte
	value []byte
	hash  uint32
	dist  int32
}

func makeBuckets(n int) []entry {
	buckets := make([]entry, n)
	for i := range buckets {
		buckets[i].dist = emptySlot
	}

	return buckets
}

func normalizeCapacity(capacity int) int {
	return int(NextPowerOf2(uint32(max(capacity, minCapacity))))
}

// find returns the bucket index of key, or -1.
//
// The walk starts at the hash's ideal bucket and gives up in two
// cases: an empty slot (the key was never displaced this far), or a
// resident whose own probe distance is strictly shorter than the
// distance walked so far. Robin Hood insertion always displaces the
// entry closer to home, so past that point the key cannot exist.
func (m *Map) find(key []byte, hash uint32) int {
	mask := uint32(len(m.buckets) - 1)
	i := hash & mask

	for dist := int32(0); ; dist++ {
		e := &m.buckets[i]
		if e.dist == emptySlot || dist > e.dist {
			return -1
		}

		if e.hash == hash && m.compare(e.key, key) == 0 {
			return int(i)
		}

		i = (i + 1) & mask
	}
}

// insert places a new entry via Robin Hood probing. The caller has
// already checked the key is absent and reserved space; insert never
// fails and never resizes.
func (m *Map) insert(incoming entry) {
	mask := uint32(len(m.buckets) - 1)
	i := incoming.hash & mask

	for {
		e := &m.buckets[i]
		if e.dist == emptySlot {
			*e = incoming
			return
		}

		// Rob the rich: whichever entry sits closer to its ideal
		// bucket yields the slot and continues probing forward.
		if incoming.dist > e.dist {
			incoming, *e = *e, incoming
		}

		incoming.dist++
		i = (i + 1) & mask
	}
}

// reserve grows the bucket array if one more insertion would reach
// the 75% load threshold. Rehashing re-runs insert for every live
// entry, rebuilding probe distances from scratch.
func (m *Map) reserve() {
	if (m.size+1)*100 >= maxLoadPercent*len(m.buckets) {
		m.grow(len(m.buckets) * 2)
	}
}

func (m *Map) grow(capacity int) {
	old := m.buckets
	m.buckets = makeBuckets(capacity)

	for i := range old {
		e := &old[i]
		if e.dist == emptySlot {
			continue
		}

		e.dist = 0
		m.insert(*e)
	}
}

// shiftBack closes the hole left at bucket i by pulling each
// successor back one slot and decrementing its probe distance, until
// an empty slot or an entry already sitting at its ideal bucket.
func (m *Map) shiftBack(i int) {
	mask := len(m.buckets) - 1

	for {
		next := (i + 1) & mask
		e := &m.buckets[next]
		if e.dist <= 0 {
			break
		}

		m.buckets[i] = *e
		m.buckets[i].dist--
		i = next
	}

	m.buckets[i] = entry{dist: emptySlot}
}
