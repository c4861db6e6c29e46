package core

import "math/rand"

// RNG is the narrow pseudo-random collaborator a Plate depends on. Its
// own algorithm is out of scope (spec Non-goals) — only this contract
// matters to the simulation.
type RNG interface {
	Next() uint32
	NextFloat64() float64
}

// MathRNG backs RNG with the standard library's math/rand, seeded the
// same way the teacher seeds its generator in core/planet_generator.go.
type MathRNG struct {
	r *rand.Rand
}

// NewMathRNG returns an RNG deterministically seeded from seed.
func NewMathRNG(seed int64) *MathRNG {
	return &MathRNG{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRNG) Next() uint32 { return m.r.Uint32() }

func (m *MathRNG) NextFloat64() float64 { return m.r.Float64() }
