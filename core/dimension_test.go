package core

import "testing"

func TestWorldDimensionNormalize(t *testing.T) {
	world := NewWorldDimension(10, 6)

	cases := []struct {
		x, y     int64
		wantX, wantY uint32
	}{
		{0, 0, 0, 0},
		{9, 5, 9, 5},
		{10, 6, 0, 0},
		{-1, -1, 9, 5},
		{23, -7, 3, 5},
	}

	for _, c := range cases {
		gotX := world.NormalizeX(c.x)
		gotY := world.NormalizeY(c.y)
		if gotX != c.wantX || gotY != c.wantY {
			t.Errorf("Normalize(%d, %d) = (%d, %d), want (%d, %d)", c.x, c.y, gotX, gotY, c.wantX, c.wantY)
		}
	}
}
