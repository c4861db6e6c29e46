package core

// HeightMap is a dense, row-major elevation grid owned by a Plate.
type HeightMap struct {
	width, height uint32
	data          []float32
}

// NewHeightMap allocates a zeroed width x height grid.
func NewHeightMap(width, height uint32) HeightMap {
	return HeightMap{width: width, height: height, data: make([]float32, width*height)}
}

func (m *HeightMap) Width() uint32  { return m.width }
func (m *HeightMap) Height() uint32 { return m.height }

// At returns the raw value at dense index i.
func (m *HeightMap) At(i uint32) float32 { return m.data[i] }

// Set writes the raw value at dense index i.
func (m *HeightMap) Set(i uint32, v float32) { m.data[i] = v }

// SetAll overwrites the whole grid from v, which must have the same
// length as the map's area.
func (m *HeightMap) SetAll(v []float32) { copy(m.data, v) }

// Raw exposes the backing slice directly; callers that need a snapshot
// should copy it rather than retain it past the next mutation.
func (m *HeightMap) Raw() []float32 { return m.data }

// AgeMap is a dense, row-major crust-age grid parallel to a HeightMap.
type AgeMap struct {
	width, height uint32
	data          []uint32
}

// NewAgeMap allocates a zeroed width x height grid.
func NewAgeMap(width, height uint32) AgeMap {
	return AgeMap{width: width, height: height, data: make([]uint32, width*height)}
}

func (m *AgeMap) At(i uint32) uint32     { return m.data[i] }
func (m *AgeMap) Set(i uint32, v uint32) { m.data[i] = v }
func (m *AgeMap) Raw() []uint32         { return m.data }
