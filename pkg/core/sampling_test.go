package core

import (
	"math/rand"
	"testing"
)

func TestSampleInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SampleInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Sample %d outside unit sphere: %v", i, p)
		}
	}
}

func TestSampleInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := SampleInUnitDisk(sampler)
		if p.Dot(p) >= 1.0 {
			t.Fatalf("Sample %d outside unit disk: %v", i, p)
		}
		if p.Z != 0 {
			t.Fatalf("Disk sample %d has non-zero z: %v", i, p)
		}
	}
}

func TestSampleInUnitSphere_Rejection(t *testing.T) {
	// First triple maps to the corner (1,1,1)-ish and must be rejected,
	// second maps to the origin.
	sampler := NewSequenceSampler(0.99, 0.99, 0.99, 0.5, 0.5, 0.5)
	p := SampleInUnitSphere(sampler)
	if !p.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected rejection to yield origin, got %v", p)
	}
}

func TestSequenceSampler_Wraps(t *testing.T) {
	s := NewSequenceSampler(0.1, 0.2)
	got := []float64{s.Get1D(), s.Get1D(), s.Get1D()}
	expected := []float64{0.1, 0.2, 0.1}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("Value %d: expected %f, got %f", i, expected[i], got[i])
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at %d", i)
		}
	}
}
