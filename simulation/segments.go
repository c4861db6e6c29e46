package simulation

import "platecore/core"

// SegmentData tracks one continent's bounding box and bookkeeping
// within a plate's local coordinate frame.
type SegmentData struct {
	X0, Y0, X1, Y1 uint32
	Area           uint32
	CollCount      uint32
	exists         bool
}

// EnlargeToContain grows the bounding box to cover local cell (x, y).
func (d *SegmentData) EnlargeToContain(x, y uint32) {
	if x < d.X0 {
		d.X0 = x
	}
	if x > d.X1 {
		d.X1 = x
	}
	if y < d.Y0 {
		d.Y0 = y
	}
	if y > d.Y1 {
		d.Y1 = y
	}
}

// IncArea records one more cell as belonging to this segment.
func (d *SegmentData) IncArea() { d.Area++ }

// IncCollCount records one more collision event against this segment.
func (d *SegmentData) IncCollCount() { d.CollCount++ }

// IsEmpty reports whether the segment currently holds no crust — the
// check aggregateCrust uses to make itself idempotent.
func (d *SegmentData) IsEmpty() bool { return d.Area == 0 }

// MarkNonExistent zeroes the segment's area without touching the id
// array that points at it: aggregateCrust deliberately leaves stale ids
// in place rather than compacting them (see DESIGN.md).
func (d *SegmentData) MarkNonExistent() {
	d.Area = 0
	d.CollCount = 0
	d.exists = false
}

// Segments owns the per-cell continent id array and the per-continent
// SegmentData table for one plate. It has no back-reference to Plate;
// callers pass in whatever view of the height map it needs.
type Segments struct {
	id   []uint32
	data []SegmentData
}

// NewSegments allocates an unassigned id array sized to area.
func NewSegments(area uint32) *Segments {
	s := &Segments{}
	s.id = make([]uint32, area)
	s.Reset()
	return s
}

// Reset marks every cell unassigned and discards all segment data.
func (s *Segments) Reset() {
	for i := range s.id {
		s.id[i] = core.BadIndex
	}
	s.data = s.data[:0]
}

func (s *Segments) ID(i uint32) uint32       { return s.id[i] }
func (s *Segments) SetID(i, c uint32)        { s.id[i] = c }
func (s *Segments) Size() uint32             { return uint32(len(s.data)) }
func (s *Segments) Area() uint32             { return uint32(len(s.id)) }
func (s *Segments) At(id uint32) *SegmentData { return &s.data[id] }

// Shift offsets every known segment's bounding box by (dx, dy), used
// when a plate's rectangle is reframed and grown.
func (s *Segments) Shift(dx, dy uint32) {
	for i := range s.data {
		s.data[i].X0 += dx
		s.data[i].X1 += dx
		s.data[i].Y0 += dy
		s.data[i].Y1 += dy
	}
}

// Reassign replaces the backing id array wholesale — used after a
// reframe copies existing ids into a newly-allocated, larger array.
func (s *Segments) Reassign(ids []uint32) {
	s.id = ids
}

// GetContinentAt returns the segment id covering local cell (x, y),
// lazily flood-filling a new segment if the cell is unassigned land.
// wrapX/wrapY must be set whenever the plate's rectangle spans the
// full world width/height respectively, so the scan wraps at the seam
// exactly like GrowToContain's own full-span handling.
func (s *Segments) GetContinentAt(x, y, width uint32, wrapX, wrapY bool, heights *core.HeightMap) uint32 {
	idx := y*width + x
	if id := s.id[idx]; id < s.Size() {
		return id
	}
	return s.CreateSegment(x, y, width, wrapX, wrapY, heights)
}

type point struct{ x, y uint32 }

// CreateSegment flood-fills the 4-connected component of land
// (map[i] > 0) containing local cell (x, y), assigns it a fresh
// segment id, and records its bounding box and area. If the cell is
// already assigned, its existing id is returned unchanged.
//
// When the plate's rectangle spans the full world width (wrapX) or
// full height (wrapY), the neighbour scan wraps at that edge instead
// of stopping there, mirroring segment_creator.cpp's own left/right and
// above/below wraparound scans for a full-span plate — otherwise a
// continent straddling the seam of a plate that has grown to cover the
// whole world would be split into two segments instead of staying one
// 4-connected component.
//
// This uses a queue-based BFS rather than the original engine's
// scanline/span algorithm (see DESIGN.md) — the spec only requires the
// flood-fill result, not that specific optimization.
func (s *Segments) CreateSegment(x, y, width uint32, wrapX, wrapY bool, heights *core.HeightMap) uint32 {
	height := heights.Height()
	idx := y*width + x
	if id := s.id[idx]; id < s.Size() {
		return id
	}

	newID := s.Size()
	data := SegmentData{X0: x, Y0: y, X1: x, Y1: y, exists: true}

	queue := []point{{x, y}}
	s.id[idx] = newID

	dirs := [4][2]int64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		data.EnlargeToContain(p.x, p.y)
		data.Area++

		for _, d := range dirs {
			nxi := int64(p.x) + d[0]
			nyi := int64(p.y) + d[1]

			if nxi < 0 || nxi >= int64(width) {
				if !wrapX {
					continue
				}
				nxi = (nxi + int64(width)) % int64(width)
			}
			if nyi < 0 || nyi >= int64(height) {
				if !wrapY {
					continue
				}
				nyi = (nyi + int64(height)) % int64(height)
			}

			nx, ny := uint32(nxi), uint32(nyi)
			ni := ny*width + nx
			if s.id[ni] != core.BadIndex {
				continue // already part of this or another segment
			}
			if heights.At(ni) <= 0 {
				continue
			}
			s.id[ni] = newID
			queue = append(queue, point{nx, ny})
		}
	}

	s.data = append(s.data, data)
	return newID
}
