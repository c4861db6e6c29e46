package simulation

import (
	"math"

	"platecore/config"
	"platecore/core"
)

// Movement is a plate's 2D velocity plus friction/collision response.
// It seeds a random initial direction and speed from the plate's own
// RNG at construction, matching the teacher's plates.go idiom of
// assigning each plate a random drift on creation.
type Movement struct {
	rng  core.RNG
	cfg  config.MovementSettings
	velX float64
	velY float64
}

// NewMovement builds a Movement with a random initial direction and
// speed drawn from cfg's range.
func NewMovement(rng core.RNG, cfg config.MovementSettings) *Movement {
	speed := cfg.InitialSpeedMin + rng.NextFloat64()*(cfg.InitialSpeedMax-cfg.InitialSpeedMin)
	angle := rng.NextFloat64() * 2 * math.Pi
	return &Movement{
		rng:  rng,
		cfg:  cfg,
		velX: speed * math.Cos(angle),
		velY: speed * math.Sin(angle),
	}
}

// VelocityOnX returns the plate's current X velocity.
func (m *Movement) VelocityOnX() float64 { return m.velX }

// VelocityOnY returns the plate's current Y velocity.
func (m *Movement) VelocityOnY() float64 { return m.velY }

// Dot returns this movement's velocity dotted with (dx, dy).
func (m *Movement) Dot(dx, dy float64) float64 {
	return m.velX*dx + m.velY*dy
}

// RelativeVelocityOnX returns this plate's own X velocity contribution
// to subtract from an incoming relative vector, signed to match the
// direction of a positive dot product — used by addCrustBySubduction
// to isolate the relative component of motion between two plates.
func (m *Movement) RelativeVelocityOnX(dotPositive bool) float64 {
	if dotPositive {
		return m.velX
	}
	return -m.velX
}

func (m *Movement) RelativeVelocityOnY(dotPositive bool) float64 {
	if dotPositive {
		return m.velY
	}
	return -m.velY
}

// ApplyFriction scales velocity down by (1 - deformedMass/totalMass),
// mirroring the original's collision-damping formula.
func (m *Movement) ApplyFriction(deformedMass, totalMass float64) {
	if totalMass <= 0 {
		return
	}
	scale := 1 - deformedMass/totalMass
	if scale < 0 {
		scale = 0
	}
	m.velX *= scale
	m.velY *= scale
}

// Collide damps the velocity of both plates involved in a collision by
// the same factor, collMass / (myMass + otherMass) capped at 1. It only
// slows both plates down; it does not exchange momentum between them,
// so total momentum is not conserved.
func (m *Movement) Collide(myMass float64, other *Movement, otherMass, collMass float64) {
	total := myMass + otherMass
	if total <= 0 || collMass <= 0 {
		return
	}
	factor := collMass / total
	if factor > 1 {
		factor = 1
	}
	m.velX *= 1 - factor
	m.velY *= 1 - factor
	other.velX *= 1 - factor
	other.velY *= 1 - factor
}

// Move applies a small RNG-driven perturbation to the plate's heading,
// matching the teacher's "if rand.Float64() < 0.01 { perturb }" idiom
// in tectonics.go/plates.go. Position integration itself happens in
// Plate.Move via the rectangle's Shift.
func (m *Movement) Move() {
	if m.rng.NextFloat64() >= m.cfg.PerturbProbability {
		return
	}
	angle := (m.rng.NextFloat64() - 0.5) * m.cfg.PerturbAngle
	cos, sin := math.Cos(angle), math.Sin(angle)
	vx := m.velX*cos - m.velY*sin
	vy := m.velX*sin + m.velY*cos
	m.velX, m.velY = vx, vy
}
