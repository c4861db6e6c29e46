package core

// WorldDimension describes the toroidal size of the world a Plate is
// embedded in. All plate-to-world coordinate translation wraps through
// these dimensions.
type WorldDimension struct {
	Width, Height uint32
}

// NewWorldDimension builds a WorldDimension from explicit width/height.
func NewWorldDimension(width, height uint32) WorldDimension {
	return WorldDimension{Width: width, Height: height}
}

func wrapMod(v int64, size uint32) uint32 {
	m := int64(size)
	v %= m
	if v < 0 {
		v += m
	}
	return uint32(v)
}

// NormalizeX wraps a world-space X coordinate into [0, Width).
func (d WorldDimension) NormalizeX(x int64) uint32 { return wrapMod(x, d.Width) }

// NormalizeY wraps a world-space Y coordinate into [0, Height).
func (d WorldDimension) NormalizeY(y int64) uint32 { return wrapMod(y, d.Height) }

// Normalize wraps both coordinates, mirroring the original's
// WorldDimension::normalize(x, y) taking both by reference.
func (d WorldDimension) Normalize(x, y uint32) (uint32, uint32) {
	return d.NormalizeX(int64(x)), d.NormalizeY(int64(y))
}
