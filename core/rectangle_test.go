package core

import "testing"

func TestRectangleMapIndex(t *testing.T) {
	world := NewWorldDimension(20, 20)
	b := NewRectangle(world, 5, 5, 4, 4)

	idx, ok := b.MapIndex(6, 6)
	if !ok {
		t.Fatalf("expected (6,6) to be inside the rectangle")
	}
	if want := b.Index(1, 1); idx != want {
		t.Errorf("MapIndex(6,6) = %d, want %d", idx, want)
	}

	if _, ok := b.MapIndex(0, 0); ok {
		t.Errorf("expected (0,0) to be outside the rectangle")
	}
}

func TestRectangleGrowToContainPadsToTheRight(t *testing.T) {
	world := NewWorldDimension(40, 40)
	b := NewRectangle(world, 10, 10, 4, 4)

	oldW, oldH, dLeft, dTop, err := b.GrowToContain(20, 10, 8)
	if err != nil {
		t.Fatalf("GrowToContain: %v", err)
	}
	if oldW != 4 || oldH != 4 {
		t.Errorf("old dims = (%d,%d), want (4,4)", oldW, oldH)
	}
	if b.Width() != 12 {
		t.Errorf("width = %d, want 12 (4 plus one padding quantum of 8)", b.Width())
	}
	if dLeft != 0 || dTop != 0 || b.X() != 10 || b.Y() != 10 {
		t.Errorf("growth to the right moved the origin: dLeft=%d dTop=%d origin=(%v,%v)", dLeft, dTop, b.X(), b.Y())
	}

	if _, ok := b.MapIndex(20, 10); !ok {
		t.Errorf("expected (20,10) to be inside the grown rectangle")
	}
}

func TestRectangleGrowToContainCapsAtWorldSize(t *testing.T) {
	world := NewWorldDimension(8, 8)

	// Exercise the cap logic with a rectangle one cell short of full
	// world width: growth must clamp instead of exceeding the world.
	b2 := NewRectangle(world, 0, 0, 7, 8)
	_, _, _, _, err := b2.GrowToContain(7, 0, 8)
	if err != nil {
		t.Fatalf("GrowToContain: %v", err)
	}
	if b2.Width() > world.Width {
		t.Errorf("grown width %d exceeds world width %d", b2.Width(), world.Width)
	}
}
