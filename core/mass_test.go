package core

import "testing"

func TestMassBuilderCentroidAndSum(t *testing.T) {
	var mb MassBuilder
	mb.AddPoint(0, 0, 1)
	mb.AddPoint(2, 0, 1)

	m := mb.Build()
	if m.Sum != 2 {
		t.Errorf("Sum = %v, want 2", m.Sum)
	}
	if m.CenterX != 1 {
		t.Errorf("CenterX = %v, want 1", m.CenterX)
	}
}

func TestMassIncMass(t *testing.T) {
	m := Mass{Sum: 5}
	m.IncMass(-2)
	if m.Sum != 3 {
		t.Errorf("Sum = %v, want 3", m.Sum)
	}
	if m.Null() {
		t.Errorf("Null() = true, want false")
	}
}

func TestEmptyMassBuilderIsNull(t *testing.T) {
	var mb MassBuilder
	if !mb.Build().Null() {
		t.Errorf("expected an empty builder to produce a null mass")
	}
}
