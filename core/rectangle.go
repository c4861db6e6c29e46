package core

import "math"

// BadIndex is the sentinel returned for a cell that falls outside a
// Rectangle, and doubles as the "unassigned" segment id sentinel used
// by simulation.Segments — both are the same 0xFFFFFFFF bit pattern in
// the original engine.
const BadIndex uint32 = ^uint32(0)

// Rectangle is a plate's bounding box inside a toroidal world: a
// floating-point origin (so growth can shift it by sub-cell amounts is
// never needed in practice, but the original keeps origin as float) and
// an integer width/height.
type Rectangle struct {
	world  WorldDimension
	x, y   float64
	width  uint32
	height uint32
}

// NewRectangle builds a Rectangle anchored at world-space (x, y) with
// the given width/height.
func NewRectangle(world WorldDimension, x, y float64, width, height uint32) Rectangle {
	return Rectangle{world: world, x: x, y: y, width: width, height: height}
}

func (b *Rectangle) Width() uint32  { return b.width }
func (b *Rectangle) Height() uint32 { return b.height }
func (b *Rectangle) X() float64     { return b.x }
func (b *Rectangle) Y() float64     { return b.y }
func (b *Rectangle) Area() uint32   { return b.width * b.height }

// Index turns local (lx, ly) coordinates into a dense row-major index.
func (b *Rectangle) Index(lx, ly uint32) uint32 { return ly*b.width + lx }

func (b *Rectangle) leftAsUint() uint32   { return uint32(int64(math.Floor(b.x))) }
func (b *Rectangle) topAsUint() uint32    { return uint32(int64(math.Floor(b.y))) }
func (b *Rectangle) rightExclusive() uint32 { return b.leftAsUint() + b.width }
func (b *Rectangle) bottomExclusive() uint32 { return b.topAsUint() + b.height }

// LocalOffset translates world coordinates (wx, wy) into the rectangle's
// local (lx, ly) frame, taking toroidal wraparound into account. ok is
// false if the cell lies outside the rectangle.
func (b *Rectangle) LocalOffset(wx, wy uint32) (lx, ly uint32, ok bool) {
	nx, ny := b.world.Normalize(wx, wy)
	left, top := b.leftAsUint(), b.topAsUint()

	dx := wrapMod(int64(nx)-int64(left), b.world.Width)
	if dx >= b.width {
		return 0, 0, false
	}
	dy := wrapMod(int64(ny)-int64(top), b.world.Height)
	if dy >= b.height {
		return 0, 0, false
	}
	return dx, dy, true
}

// MapIndex is LocalOffset composed with Index: the dense local index for
// world coordinates, or BadIndex if the cell lies outside.
func (b *Rectangle) MapIndex(wx, wy uint32) (idx uint32, ok bool) {
	lx, ly, ok := b.LocalOffset(wx, wy)
	if !ok {
		return BadIndex, false
	}
	return b.Index(lx, ly), true
}

// ValidMapIndex is MapIndex for callers that have already established
// the cell must be in bounds; it panics otherwise, mirroring the
// original's getValidMapIndex assertion.
func (b *Rectangle) ValidMapIndex(wx, wy uint32) (idx, lx, ly uint32) {
	lx, ly, ok := b.LocalOffset(wx, wy)
	Assert(ok, ErrInvalidArgument)
	return b.Index(lx, ly), lx, ly
}

// LocalInLimits floors (fx, fy) and reports whether the resulting local
// cell lies within [0, width) x [0, height) — no wraparound, since this
// is used for within-plate neighbourhood offsets (addCrustBySubduction),
// not world-space lookups.
func (b *Rectangle) LocalInLimits(fx, fy float64) (lx, ly uint32, ok bool) {
	ix, iy := math.Floor(fx), math.Floor(fy)
	if ix < 0 || iy < 0 || ix >= float64(b.width) || iy >= float64(b.height) {
		return 0, 0, false
	}
	return uint32(ix), uint32(iy), true
}

func roundPad(v, quantum uint32) uint32 {
	if v == 0 {
		return 0
	}
	return (v/quantum + 1) * quantum
}

// GrowToContain computes and applies the minimal rectangle growth (in
// multiples of paddingQuantum, see spec §4.2) required so that world
// cell (x, y) falls inside the rectangle. oldWidth/oldHeight and
// dLeft/dTop describe the delta so the caller can re-home existing
// buffers into the new, larger one.
func (b *Rectangle) GrowToContain(x, y, paddingQuantum uint32) (oldWidth, oldHeight, dLeft, dTop uint32, err error) {
	nx, ny := b.world.Normalize(x, y)
	ilft, itop := b.leftAsUint(), b.topAsUint()
	irgt, ibtm := b.rightExclusive()-1, b.bottomExclusive()-1

	lft := ilft - nx
	var rgt uint32
	if nx < ilft {
		rgt = b.world.Width + nx - irgt
	} else {
		rgt = nx - irgt
	}

	top := itop - ny
	var btm uint32
	if ny < itop {
		btm = b.world.Height + ny - ibtm
	} else {
		btm = ny - ibtm
	}

	var dL, dR uint32
	if lft < rgt && lft < b.world.Width {
		dL = lft
	}
	if rgt <= lft && rgt < b.world.Width {
		dR = rgt
	}

	var dT, dB uint32
	if top < btm && top < b.world.Height {
		dT = top
	}
	if btm <= top && btm < b.world.Height {
		dB = btm
	}

	dL, dR, dT, dB = roundPad(dL, paddingQuantum), roundPad(dR, paddingQuantum), roundPad(dT, paddingQuantum), roundPad(dB, paddingQuantum)

	if b.width+dL+dR > b.world.Width {
		dL = 0
		dR = b.world.Width - b.width
	}
	if b.height+dT+dB > b.world.Height {
		dT = 0
		dB = b.world.Height - b.height
	}

	if dL+dR+dT+dB == 0 {
		return 0, 0, 0, 0, ErrNoRoomToGrow
	}

	oldWidth, oldHeight = b.width, b.height
	b.shift(-float64(dL), -float64(dT))
	b.grow(dL+dR, dT+dB)
	return oldWidth, oldHeight, dL, dT, nil
}

func (b *Rectangle) shift(dx, dy float64) {
	b.x += dx
	b.y += dy
	fw, fh := float64(b.world.Width), float64(b.world.Height)
	b.x = math.Mod(math.Mod(b.x, fw)+fw, fw)
	b.y = math.Mod(math.Mod(b.y, fh)+fh, fh)
}

func (b *Rectangle) grow(dw, dh uint32) {
	b.width += dw
	b.height += dh
}

// Shift moves the rectangle's origin by (dx, dy), wrapping around the
// world — used by Plate.Move to apply the plate's velocity each tick.
func (b *Rectangle) Shift(dx, dy float64) { b.shift(dx, dy) }
