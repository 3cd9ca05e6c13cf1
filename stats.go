package robinmap

import (
	"fmt"
	"io"
)

// Stats is a snapshot of the table's occupancy and clustering.
type Stats struct {
	Size                 int
	Capacity             int
	LoadFactor           float64
	MaxProbeDistance     int
	AverageProbeDistance float64
}

func (s Stats) String() string {
	return fmt.Sprintf("size=%d capacity=%d load=%.2f%% probe(max=%d avg=%.2f)",
		s.Size, s.Capacity, s.LoadFactor, s.MaxProbeDistance, s.AverageProbeDistance)
}

// LoadFactor returns occupancy as a percentage of the bucket count.
func (m *Map) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets)) * 100
}

// MaxProbeDistance returns the longest displacement of any live entry
// from its ideal bucket. Zero for an empty map.
func (m *Map) MaxProbeDistance() int {
	var maxDist int32
	for i := range m.buckets {
		if d := m.buckets[i].dist; d > maxDist {
			maxDist = d
		}
	}

	return int(maxDist)
}

// AverageProbeDistance returns the mean displacement over all live
// entries. Zero for an empty map.
func (m *Map) AverageProbeDistance() float64 {
	if m.size == 0 {
		return 0
	}

	var total int
	for i := range m.buckets {
		if d := m.buckets[i].dist; d != emptySlot {
			total += int(d)
		}
	}

	return float64(total) / float64(m.size)
}

// Stats returns a snapshot of occupancy and probe-distance statistics.
func (m *Map) Stats() Stats {
	return Stats{
		Size:                 m.size,
		Capacity:             len(m.buckets),
		LoadFactor:           m.LoadFactor(),
		MaxProbeDistance:     m.MaxProbeDistance(),
		AverageProbeDistance: m.AverageProbeDistance(),
	}
}

// PrintStats writes a one-line stats summary to w.
func (m *Map) PrintStats(w io.Writer) {
	fmt.Fprintln(w, m.Stats())
}
