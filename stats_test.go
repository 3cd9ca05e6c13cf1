package robinmap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_LoadFactor(t *testing.T) {
	m := newInt32Map(t, 16)

	assert.Zero(t, m.LoadFactor())

	for i := range int32(4) {
		require.NoError(t, m.Put(Int32Bytes(i), Int32Bytes(i)))
	}

	assert.InDelta(t, 25.0, m.LoadFactor(), 1e-9)
}

func TestStats_ProbeDistances(t *testing.T) {
	m, err := New(16, 4, 4, zeroHash, CompareInt32)
	require.NoError(t, err)

	assert.Zero(t, m.MaxProbeDistance())
	assert.Zero(t, m.AverageProbeDistance())

	// Forced chain at bucket 0: distances are exactly 0, 1, 2.
	for i := range int32(3) {
		require.NoError(t, m.Put(Int32Bytes(i), Int32Bytes(i)))
	}

	assert.Equal(t, 2, m.MaxProbeDistance())
	assert.InDelta(t, 1.0, m.AverageProbeDistance(), 1e-9)
}

func TestStats_Snapshot(t *testing.T) {
	m := newInt32Map(t, 16)

	for i := range int32(4) {
		require.NoError(t, m.Put(Int32Bytes(i), Int32Bytes(i)))
	}

	s := m.Stats()
	assert.Equal(t, 4, s.Size)
	assert.Equal(t, 16, s.Capacity)
	assert.InDelta(t, 25.0, s.LoadFactor, 1e-9)
	assert.GreaterOrEqual(t, s.AverageProbeDistance, 0.0)
	assert.GreaterOrEqual(t, s.MaxProbeDistance, 0)
}

func TestStats_Print(t *testing.T) {
	m := newInt32Map(t, 16)
	require.NoError(t, m.Put(Int32Bytes(1), Int32Bytes(1)))

	var buf bytes.Buffer
	m.PrintStats(&buf)

	out := buf.String()
	assert.Contains(t, out, "size=1")
	assert.Contains(t, out, "capacity=16")
	assert.Contains(t, out, "load=6.25%")
}
