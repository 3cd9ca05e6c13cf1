package robinmap

import "github.com/emirpasic/gods/lists/arraylist"

// Pair is one key/value projection element. Both slices are borrowed
// references into the map's storage.
type Pair struct {
	Key   []byte
	Value []byte
}

// Keys exports all live keys, in iterator order, into an array list.
func (m *Map) Keys() *arraylist.List {
	l := arraylist.New()
	for it := m.Iterator(); it.Valid(); it.Next() {
		l.Add(it.Key())
	}

	return l
}

// Values exports all live values, in iterator order, into an array list.
func (m *Map) Values() *arraylist.List {
	l := arraylist.New()
	for it := m.Iterator(); it.Valid(); it.Next() {
		l.Add(it.Value())
	}

	return l
}

// Entries exports all live entries as Pairs, in iterator order.
func (m *Map) Entries() *arraylist.List {
	l := arraylist.New()
	for it := m.Iterator(); it.Valid(); it.Next() {
		l.Add(Pair{Key: it.Key(), Value: it.Value()})
	}

	return l
}
