package simulation

import (
	"math"
	"testing"

	"platecore/config"
	"platecore/core"
)

func TestApplyFrictionScalesVelocityDown(t *testing.T) {
	rng := core.NewMathRNG(1)
	m := NewMovement(rng, config.Default().Movement)

	before := m.VelocityOnX()*m.VelocityOnX() + m.VelocityOnY()*m.VelocityOnY()
	m.ApplyFriction(5, 10) // half the mass deformed
	after := m.VelocityOnX()*m.VelocityOnX() + m.VelocityOnY()*m.VelocityOnY()

	if after > before {
		t.Errorf("friction increased speed: before=%v after=%v", before, after)
	}
	if math.Abs(after-before*0.25) > 1e-9 {
		t.Errorf("expected speed^2 to scale by 0.25, got before=%v after=%v", before, after)
	}
}

func TestApplyFrictionNoMassIsNoop(t *testing.T) {
	rng := core.NewMathRNG(1)
	m := NewMovement(rng, config.Default().Movement)
	vx, vy := m.VelocityOnX(), m.VelocityOnY()

	m.ApplyFriction(1, 0)

	if m.VelocityOnX() != vx || m.VelocityOnY() != vy {
		t.Errorf("expected a zero-mass plate to be unaffected by friction")
	}
}

func TestCollideDampsBothPlatesVelocity(t *testing.T) {
	rng := core.NewMathRNG(2)
	a := NewMovement(rng, config.Default().Movement)
	b := NewMovement(rng, config.Default().Movement)

	avx, avy := a.VelocityOnX(), a.VelocityOnY()
	bvx, bvy := b.VelocityOnX(), b.VelocityOnY()

	a.Collide(100, b, 100, 50)

	if a.VelocityOnX() == avx && a.VelocityOnY() == avy {
		t.Errorf("expected collision to change plate a's velocity")
	}
	if b.VelocityOnX() == bvx && b.VelocityOnY() == bvy {
		t.Errorf("expected collision to change plate b's velocity")
	}
}
