// Package physics implements the per-cell numerical passes a Plate
// drives its erosion step through, kept separate from the simulation
// package the same way the teacher splits physics/water_flow.go out of
// its plate/voxel orchestration: plain functions over explicit grid
// parameters, no back-reference to the owning plate.
package physics

import "platecore/core"

// Neighbors holds the four 4-connected neighbours of a cell in a dense
// row-major grid. A neighbour that falls outside the grid is reported
// as height 0 with its index left at the cell's own index. FlowRivers
// substitutes the cell's own height for such a neighbour, so it is
// chosen only when no in-range neighbour is lower, and the destination
// is then the cell itself.
type Neighbors struct {
	West, East, North, South            float32
	WestIdx, EastIdx, NorthIdx, SouthIdx uint32
}

// CalculateCrust computes the four neighbours of local cell (x, y) in a
// width x height grid.
func CalculateCrust(x, y, width, height uint32, heights []float32) Neighbors {
	idx := y*width + x
	n := Neighbors{WestIdx: idx, EastIdx: idx, NorthIdx: idx, SouthIdx: idx}

	if x > 0 {
		n.WestIdx = idx - 1
		n.West = heights[n.WestIdx]
	}
	if x < width-1 {
		n.EastIdx = idx + 1
		n.East = heights[n.EastIdx]
	}
	if y > 0 {
		n.NorthIdx = idx - width
		n.North = heights[n.NorthIdx]
	}
	if y < height-1 {
		n.SouthIdx = idx + width
		n.South = heights[n.SouthIdx]
	}
	return n
}

// FindRiverSources returns the indices of every cell at or above
// lowerBound whose four neighbours are all nonzero. This matches the
// original engine's literal check (skip only on an exactly-zero
// neighbour) rather than the looser "strictly lower" language a casual
// reading of the algorithm might suggest — see DESIGN.md.
func FindRiverSources(lowerBound float32, width, height uint32, heights []float32) []uint32 {
	var sources []uint32
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			idx := y*width + x
			if heights[idx] < lowerBound {
				continue
			}
			n := CalculateCrust(x, y, width, height, heights)
			if n.West*n.East*n.North*n.South == 0 {
				continue
			}
			sources = append(sources, idx)
		}
	}
	return sources
}

// FlowRivers carves river paths from sources downhill, one step per
// round, writing erosion into tmp while reading static neighbour
// heights from heights. Ties among the four directions break in the
// order west, east, north, south.
func FlowRivers(lowerBound, carveFactor float32, width, height uint32, heights, tmp []float32, sources []uint32) {
	area := width * height
	isDone := make([]bool, area)
	sinks := make([]uint32, 0, len(sources))

	for len(sources) > 0 {
		for len(sources) > 0 {
			index := sources[len(sources)-1]
			sources = sources[:len(sources)-1]

			if heights[index] < lowerBound {
				continue
			}

			y := index / width
			x := index - y*width
			n := CalculateCrust(x, y, width, height, heights)

			if n.West == 0 && n.East == 0 && n.North == 0 && n.South == 0 {
				continue
			}

			wCrust, eCrust, nCrust, sCrust := n.West, n.East, n.North, n.South
			if wCrust == 0 {
				wCrust = heights[index]
			}
			if eCrust == 0 {
				eCrust = heights[index]
			}
			if nCrust == 0 {
				nCrust = heights[index]
			}
			if sCrust == 0 {
				sCrust = heights[index]
			}

			lowest, dest := wCrust, n.WestIdx
			if eCrust < lowest {
				lowest, dest = eCrust, n.EastIdx
			}
			if nCrust < lowest {
				lowest, dest = nCrust, n.NorthIdx
			}
			if sCrust < lowest {
				lowest, dest = sCrust, n.SouthIdx
			}

			if dest < area && !isDone[dest] {
				sinks = append(sinks, dest)
				isDone[dest] = true
			}

			tmp[index] -= (tmp[index] - lowerBound) * carveFactor
		}
		sources, sinks = sinks, sources[:0]
	}
}

// RedistributeSlopes is erosion pass 2: every cell at or above
// lowerBound gives up min_diff, its height drop to its tallest lower
// neighbour, to its lower neighbours in proportion to how far each sits
// below that tallest one. When those gaps add up to less than min_diff,
// the lower neighbours are first raised level with the tallest one and
// the rest is shared equally between the cell and its lower neighbours.
// min_diff is clamped to existing (on-plate, nonzero) lower neighbours
// only — see DESIGN.md Open Question #2.
func RedistributeSlopes(lowerBound float32, width, height uint32, heights []float32) ([]float32, core.MassBuilder) {
	tmp := make([]float32, len(heights))
	var mb core.MassBuilder

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			idx := y*width + x
			h := heights[idx]
			tmp[idx] += h
			mb.AddPoint(x, y, float64(h))

			if h < lowerBound {
				continue
			}

			n := CalculateCrust(x, y, width, height, heights)
			if n.West == 0 && n.East == 0 && n.North == 0 && n.South == 0 {
				continue
			}

			wDiff, eDiff, nDiff, sDiff := h-n.West, h-n.East, h-n.North, h-n.South
			wExists, eExists, nExists, sExists := n.West > 0 && wDiff > 0, n.East > 0 && eDiff > 0, n.North > 0 && nDiff > 0, n.South > 0 && sDiff > 0

			var minDiff float32
			anyLower := false
			consider := func(exists bool, diff float32) {
				if !exists {
					return
				}
				if !anyLower || diff < minDiff {
					minDiff, anyLower = diff, true
				}
			}
			consider(wExists, wDiff)
			consider(eExists, eDiff)
			consider(nExists, nDiff)
			consider(sExists, sDiff)
			if !anyLower {
				continue
			}

			var diffSum float32
			if wExists {
				diffSum += wDiff - minDiff
			}
			if eExists {
				diffSum += eDiff - minDiff
			}
			if nExists {
				diffSum += nDiff - minDiff
			}
			if sExists {
				diffSum += sDiff - minDiff
			}

			if diffSum < minDiff {
				if wExists {
					tmp[n.WestIdx] += wDiff - minDiff
				}
				if eExists {
					tmp[n.EastIdx] += eDiff - minDiff
				}
				if nExists {
					tmp[n.NorthIdx] += nDiff - minDiff
				}
				if sExists {
					tmp[n.SouthIdx] += sDiff - minDiff
				}
				tmp[idx] -= minDiff

				remaining := minDiff - diffSum
				count := float32(1)
				if wExists {
					count++
				}
				if eExists {
					count++
				}
				if nExists {
					count++
				}
				if sExists {
					count++
				}
				remaining /= count

				tmp[idx] += remaining
				if wExists {
					tmp[n.WestIdx] += remaining
				}
				if eExists {
					tmp[n.EastIdx] += remaining
				}
				if nExists {
					tmp[n.NorthIdx] += remaining
				}
				if sExists {
					tmp[n.SouthIdx] += remaining
				}
			} else {
				unit := minDiff / diffSum
				tmp[idx] -= minDiff
				if wExists {
					tmp[n.WestIdx] += unit * (wDiff - minDiff)
				}
				if eExists {
					tmp[n.EastIdx] += unit * (eDiff - minDiff)
				}
				if nExists {
					tmp[n.NorthIdx] += unit * (nDiff - minDiff)
				}
				if sExists {
					tmp[n.SouthIdx] += unit * (sDiff - minDiff)
				}
			}
		}
	}

	return tmp, mb
}
