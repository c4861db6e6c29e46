// Package simulation implements a single tectonic plate's state and the
// per-tick operations a world simulator drives it through: continent
// segmentation, growth/reframe, collision/aggregation, subduction
// deposition, and hydraulic erosion.
package simulation

import (
	"platecore/config"
	"platecore/core"
	"platecore/physics"
)

// Plate is a movable rectangular subgrid of elevation and age samples
// embedded in a toroidal world.
type Plate struct {
	cfg    config.PlateConfig
	logger core.Logger
	rng    core.RNG

	world    core.WorldDimension
	bounds   core.Rectangle
	heights  core.HeightMap
	ages     core.AgeMap
	mass     core.Mass
	segments *Segments
	movement *Movement
}

// Option configures optional Plate dependencies at construction time.
type Option func(*Plate)

// WithLogger attaches a diagnostic sink; the default is silent.
func WithLogger(l core.Logger) Option {
	return func(p *Plate) { p.logger = l }
}

// WithConfig overrides the default tunables.
func WithConfig(cfg config.PlateConfig) Option {
	return func(p *Plate) { p.cfg = cfg }
}

// NewPlate constructs a plate anchored at world-space (x, y) with the
// given heights (row-major, width*height long), crust age, and world
// dimensions. heights must be non-nil and exactly width*height long.
func NewPlate(seed int64, heights []float32, width, height, x, y, age uint32, world core.WorldDimension, opts ...Option) (*Plate, error) {
	if heights == nil || width == 0 || height == 0 {
		return nil, core.ErrInvalidArgument
	}
	if uint32(len(heights)) != width*height {
		return nil, core.ErrInvalidArgument
	}

	p := &Plate{
		cfg:    config.Default(),
		logger: core.NopLogger,
		world:  world,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.rng = core.NewMathRNG(seed)
	p.bounds = core.NewRectangle(world, float64(x), float64(y), width, height)
	p.heights = core.NewHeightMap(width, height)
	p.ages = core.NewAgeMap(width, height)
	p.segments = NewSegments(width * height)
	p.movement = NewMovement(p.rng, p.cfg.Movement)

	var mb core.MassBuilder
	for ly := uint32(0); ly < height; ly++ {
		for lx := uint32(0); lx < width; lx++ {
			idx := ly*width + lx
			z := heights[idx]
			p.heights.Set(idx, z)
			if z > 0 {
				p.ages.Set(idx, age)
			}
			mb.AddPoint(lx, ly, float64(z))
		}
	}
	p.mass = mb.Build()

	return p, nil
}

// --- Queries ---

// GetCrust returns the crust height at world coordinates (x, y), or 0
// if the cell is not covered by this plate.
func (p *Plate) GetCrust(x, y uint32) float32 {
	idx, ok := p.bounds.MapIndex(x, y)
	if !ok {
		return 0
	}
	return p.heights.At(idx)
}

// GetCrustTimestamp returns the crust age at world coordinates (x, y),
// or 0 if the cell is not covered by this plate.
func (p *Plate) GetCrustTimestamp(x, y uint32) uint32 {
	idx, ok := p.bounds.MapIndex(x, y)
	if !ok {
		return 0
	}
	return p.ages.At(idx)
}

// GetMap returns copies of the plate's full height and age grids,
// deliberately copy-out rather than a borrowed pointer pair (see
// SPEC_FULL.md's note on the original's raw-buffer exposure).
func (p *Plate) GetMap() ([]float32, []uint32) {
	h := append([]float32(nil), p.heights.Raw()...)
	a := append([]uint32(nil), p.ages.Raw()...)
	return h, a
}

// Mass returns the plate's current total crust mass.
func (p *Plate) Mass() float64 { return p.mass.Sum }

// Width, Height and the origin describe the plate's current rectangle.
func (p *Plate) Width() uint32    { return p.bounds.Width() }
func (p *Plate) Height() uint32   { return p.bounds.Height() }
func (p *Plate) OriginX() float64 { return p.bounds.X() }
func (p *Plate) OriginY() float64 { return p.bounds.Y() }

// GetContinentArea returns the area of the continent segment covering
// world coordinates (x, y). The segment must already exist (created by
// a prior AddCollision or CreateSegment call).
func (p *Plate) GetContinentArea(x, y uint32) uint32 {
	idx, _, _ := p.bounds.ValidMapIndex(x, y)
	id := p.segments.ID(idx)
	core.Assert(id < p.segments.Size(), core.ErrSegmentSizeMismatch)
	return p.segments.At(id).Area
}

// GetCollisionInfo returns the accumulated collision count and the
// collision-to-area ratio for the continent covering world coordinates
// (x, y), lazily creating the segment if it doesn't exist yet.
func (p *Plate) GetCollisionInfo(x, y uint32) (count uint32, ratio float32) {
	seg := p.getContinentAt(x, y)
	data := p.segments.At(seg)
	return data.CollCount, float32(data.CollCount) / float32(1+data.Area)
}

// SelectCollisionSegment returns the segment id already assigned to
// world coordinates (x, y), without creating one. Callers invoke this
// on the *other* plate in a collision after both plates' AddCollision
// has already run for this tick, so the segment is guaranteed to exist.
func (p *Plate) SelectCollisionSegment(x, y uint32) uint32 {
	idx, _, _ := p.bounds.ValidMapIndex(x, y)
	return p.segments.ID(idx)
}

// getContinentAt is the private, lazily-creating counterpart to
// SelectCollisionSegment used internally by AddCollision and
// GetCollisionInfo — see DESIGN.md on why both exist.
func (p *Plate) getContinentAt(x, y uint32) uint32 {
	_, lx, ly := p.bounds.ValidMapIndex(x, y)
	wrapX, wrapY := p.segmentWrap()
	return p.segments.GetContinentAt(lx, ly, p.bounds.Width(), wrapX, wrapY, &p.heights)
}

// segmentWrap reports whether the plate's rectangle currently spans the
// full world width/height, in which case continent segmentation must
// wrap at that edge instead of treating it as the rectangle's boundary.
func (p *Plate) segmentWrap() (wrapX, wrapY bool) {
	return p.bounds.Width() == p.world.Width, p.bounds.Height() == p.world.Height
}

// --- Mutators ---

// SetCrust overwrites the crust height and age at world coordinates
// (x, y), growing and reframing the plate's rectangle first if the
// cell currently falls outside it.
func (p *Plate) SetCrust(x, y uint32, z float32, t uint32) {
	if z < 0 {
		z = 0
	}

	idx, ok := p.bounds.MapIndex(x, y)
	if !ok {
		oldW, oldH, dLft, dTop, err := p.bounds.GrowToContain(x, y, p.cfg.Growth.PaddingQuantum)
		core.Assert(err == nil, err)
		p.growBuffers(oldW, oldH, dLft, dTop)
		p.logger.Printf("plate grew to %dx%d to contain world cell (%d, %d)", p.bounds.Width(), p.bounds.Height(), x, y)

		idx, ok = p.bounds.MapIndex(x, y)
		core.Assert(ok, core.ErrNoRoomToGrow)
	}

	oldCrust := p.heights.At(idx)
	switch {
	case oldCrust > 0 && z > 0:
		oldAge := p.ages.At(idx)
		newAge := uint32((float64(oldCrust)*float64(oldAge) + float64(z)*float64(t)) / float64(oldCrust+z))
		p.ages.Set(idx, newAge)
	case oldCrust == 0 && z > 0:
		p.ages.Set(idx, t)
	}

	p.mass.IncMass(float64(z) - float64(oldCrust))
	p.heights.Set(idx, z)
}

func (p *Plate) growBuffers(oldW, oldH, dLeft, dTop uint32) {
	newW, newH := p.bounds.Width(), p.bounds.Height()

	newHeights := core.NewHeightMap(newW, newH)
	newAges := core.NewAgeMap(newW, newH)
	newIDs := make([]uint32, newW*newH)
	for i := range newIDs {
		newIDs[i] = core.BadIndex
	}

	for j := uint32(0); j < oldH; j++ {
		srcRow := j * oldW
		dstRow := (dTop+j)*newW + dLeft
		for i := uint32(0); i < oldW; i++ {
			newHeights.Set(dstRow+i, p.heights.At(srcRow+i))
			newAges.Set(dstRow+i, p.ages.At(srcRow+i))
			newIDs[dstRow+i] = p.segments.ID(srcRow + i)
		}
	}

	p.heights = newHeights
	p.ages = newAges
	p.segments.Reassign(newIDs)
	p.segments.Shift(dLeft, dTop)
}

// AddCrustByCollision deposits crust at world coordinates (x, y) as the
// result of a collision, assigning the cell to activeContinent.
func (p *Plate) AddCrustByCollision(x, y uint32, z float32, t uint32, activeContinent uint32) {
	p.SetCrust(x, y, p.GetCrust(x, y)+z, t)

	idx, lx, ly := p.bounds.ValidMapIndex(x, y)
	p.segments.SetID(idx, activeContinent)
	seg := p.segments.At(activeContinent)
	seg.IncArea()
	seg.EnlargeToContain(lx, ly)
}

// AddCrustBySubduction deposits crust near world coordinates (x, y),
// offset by the relative motion (dx, dy) between the colliding plates
// plus RNG-driven noise, silently dropping the deposit if the target
// cell falls outside the plate or over open ocean.
func (p *Plate) AddCrustBySubduction(x, y uint32, z float32, t uint32, dx, dy float64) {
	_, lx, ly := p.bounds.ValidMapIndex(x, y)

	dot := p.movement.Dot(dx, dy)
	if dot != 0 {
		dx -= p.movement.RelativeVelocityOnX(dot > 0)
		dy -= p.movement.RelativeVelocityOnY(dot > 0)
	}

	offset := p.rng.NextFloat64()
	offset *= offset * offset * offset
	if p.rng.Next()%2 == 0 {
		offset = -offset
	}
	dx = 10*dx + 3*offset
	dy = 10*dy + 3*offset

	fx := float64(lx) + dx
	fy := float64(ly) + dy

	flx, fly, ok := p.bounds.LocalInLimits(fx, fy)
	if !ok {
		return
	}

	idx := p.bounds.Index(flx, fly)
	oldCrust := p.heights.At(idx)
	if oldCrust <= 0 {
		return
	}

	oldAge := p.ages.At(idx)
	newAge := uint32((float64(oldCrust)*float64(oldAge) + float64(z)*float64(t)) / float64(oldCrust+z))
	p.ages.Set(idx, newAge)
	p.heights.Set(idx, oldCrust+z)
	p.mass.IncMass(float64(z))
}

// AddCollision registers a collision event at world coordinates (x, y),
// lazily creating the continent segment there if needed, and returns
// that segment's current area.
func (p *Plate) AddCollision(x, y uint32) uint32 {
	seg := p.getContinentAt(x, y)
	data := p.segments.At(seg)
	data.IncCollCount()
	return data.Area
}

// Collide damps the velocity of both this plate and other by the same
// factor, collMass relative to the two plates' combined mass (see
// Movement.Collide); no momentum is exchanged between them.
func (p *Plate) Collide(other *Plate, collMass float64) {
	p.movement.Collide(p.mass.Sum, other.movement, other.mass.Sum, collMass)
}

// AggregateCrust merges the continent segment covering world
// coordinates (x, y) into other, zeroing this plate's crust there. It
// is idempotent: calling it again on an already-emptied segment is a
// no-op. Returns the mass transferred.
func (p *Plate) AggregateCrust(other *Plate, x, y uint32) float64 {
	idx, lx, ly := p.bounds.ValidMapIndex(x, y)
	segID := p.segments.ID(idx)
	if segID >= p.segments.Size() {
		return 0
	}

	seg := p.segments.At(segID)
	if seg.IsEmpty() {
		return 0
	}

	activeContinent := other.SelectCollisionSegment(x, y)

	wx := x + p.world.Width
	wy := y + p.world.Height

	width := p.bounds.Width()
	before := p.mass.Sum

	for gy := seg.Y0; gy <= seg.Y1; gy++ {
		for gx := seg.X0; gx <= seg.X1; gx++ {
			i := gy*width + gx
			if p.segments.ID(i) != segID {
				continue
			}
			h := p.heights.At(i)
			if h <= 0 {
				continue
			}
			other.AddCrustByCollision(wx+gx-lx, wy+gy-ly, h, p.ages.At(i), activeContinent)
			p.mass.IncMass(-float64(h))
			p.heights.Set(i, 0)
		}
	}

	seg.MarkNonExistent()
	return before - p.mass.Sum
}

// ApplyFriction damps this plate's velocity in proportion to how much
// of its mass was just deformed by a collision.
func (p *Plate) ApplyFriction(deformedMass float64) {
	p.movement.ApplyFriction(deformedMass, p.mass.Sum)
}

// Move advances the plate one tick: Movement applies its own
// RNG-driven heading perturbation, then the rectangle is shifted by
// the resulting velocity.
func (p *Plate) Move() {
	p.movement.Move()
	p.bounds.Shift(p.movement.VelocityOnX(), p.movement.VelocityOnY())
}

// ResetSegments clears all continent segmentation, ready for the world
// to re-derive it next tick.
func (p *Plate) ResetSegments() {
	core.Assert(p.bounds.Area() == p.segments.Area(), core.ErrSegmentSizeMismatch)
	p.segments.Reset()
}

// CreateSegment explicitly flood-fills and registers the continent
// segment covering world coordinates (x, y), returning its id.
func (p *Plate) CreateSegment(x, y uint32) uint32 {
	_, lx, ly := p.bounds.ValidMapIndex(x, y)
	wrapX, wrapY := p.segmentWrap()
	return p.segments.CreateSegment(lx, ly, p.bounds.Width(), wrapX, wrapY, &p.heights)
}

// Erode runs the two-pass hydraulic erosion step: river carving
// followed by slope redistribution, with an RNG-driven noise
// perturbation applied between the two passes.
func (p *Plate) Erode(lowerBound float32) {
	width, height := p.bounds.Width(), p.bounds.Height()
	original := append([]float32(nil), p.heights.Raw()...)

	carved := append([]float32(nil), original...)
	sources := physics.FindRiverSources(lowerBound, width, height, original)
	physics.FlowRivers(lowerBound, float32(p.cfg.Erosion.RiverCarveFactor), width, height, original, carved, sources)

	for i := range carved {
		alpha := float32(p.cfg.Erosion.NoiseBand * p.rng.NextFloat64())
		carved[i] += float32(p.cfg.Erosion.NoiseBaseline)*carved[i] - alpha*carved[i]
	}

	redistributed, mb := physics.RedistributeSlopes(lowerBound, width, height, carved)
	p.heights.SetAll(redistributed)
	p.mass = mb.Build()
}
