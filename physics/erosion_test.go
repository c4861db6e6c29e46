package physics

import "testing"

func TestCalculateCrustEdgesReportZero(t *testing.T) {
	heights := []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	n := CalculateCrust(0, 0, 3, 3, heights)
	if n.West != 0 || n.North != 0 {
		t.Errorf("expected west/north of a corner cell to be 0, got west=%v north=%v", n.West, n.North)
	}
	if n.East != 2 || n.South != 4 {
		t.Errorf("East/South = %v/%v, want 2/4", n.East, n.South)
	}
}

func TestFindRiverSourcesSkipsCellsWithAnyZeroNeighbour(t *testing.T) {
	heights := []float32{
		0, 1, 0,
		1, 1, 1,
		0, 1, 0,
	}
	sources := FindRiverSources(0, 3, 3, heights)

	// Only the center cell (index 4) has all four nonzero neighbours.
	if len(sources) != 1 || sources[0] != 4 {
		t.Errorf("sources = %v, want [4]", sources)
	}
}

func TestFlowRiversCarvesTowardsLowerBound(t *testing.T) {
	width, height := uint32(3), uint32(3)
	heights := []float32{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	}
	tmp := append([]float32(nil), heights...)
	sources := []uint32{4}

	FlowRivers(0, 0.2, width, height, heights, tmp, sources)

	if tmp[4] >= heights[4] {
		t.Errorf("expected the source cell to erode, got %v (was %v)", tmp[4], heights[4])
	}
}

func TestRedistributeSlopesConservesMass(t *testing.T) {
	width, height := uint32(3), uint32(3)
	heights := []float32{
		1, 1, 1,
		1, 4, 1,
		1, 1, 1,
	}

	var before float64
	for _, h := range heights {
		before += float64(h)
	}

	redistributed, _ := RedistributeSlopes(0, width, height, heights)

	var after float64
	for _, h := range redistributed {
		after += float64(h)
	}

	if diff := after - before; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("RedistributeSlopes changed total mass: before=%v after=%v", before, after)
	}
	if redistributed[4] >= heights[4] {
		t.Errorf("expected the peak cell to lose height, got %v (was %v)", redistributed[4], heights[4])
	}
}

func TestRedistributeSlopesRaisesALowerNeighbour(t *testing.T) {
	width, height := uint32(3), uint32(3)
	heights := []float32{
		1, 1, 1,
		1, 4, 1,
		1, 1, 1,
	}

	redistributed, _ := RedistributeSlopes(0, width, height, heights)

	if redistributed[4] >= heights[4] {
		t.Fatalf("expected the peak cell to strictly lose height, got %v (was %v)", redistributed[4], heights[4])
	}

	raised := false
	for _, i := range []uint32{1, 3, 5, 7} { // the peak's four 4-connected neighbours
		if redistributed[i] > heights[i] {
			raised = true
			break
		}
	}
	if !raised {
		t.Errorf("expected at least one 4-neighbour of the peak to strictly gain height, got %v", redistributed)
	}
}
