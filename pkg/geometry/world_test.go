package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/material"
)

func TestWorld_Hit_Empty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Empty world should not be hit, got t=%f", hit.T)
	}
}

func TestWorld_Hit_Nearest(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	tests := []struct {
		name   string
		shapes []Shape
	}{
		{
			name: "near added first",
			shapes: []Shape{
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
			},
		},
		{
			name: "far added first",
			shapes: []Shape{
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
			},
		},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld(tt.shapes...)
			hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest t=1.5, got t=%f", hit.T)
			}
			if hit.Material != near {
				t.Errorf("Expected material of nearest sphere")
			}
		})
	}
}

func TestWorld_Hit_RespectsBounds(t *testing.T) {
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, -2), 0.5, nil),
		NewSphere(core.NewVec3(0, 0, -5), 0.5, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The near sphere lies entirely before tMin
	hit, isHit := world.Hit(ray, 3.0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on far sphere")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", hit.T)
	}

	if _, isHit := world.Hit(ray, 0.001, 1.0); isHit {
		t.Error("Expected miss when tMax is before every sphere")
	}
}

func TestWorld_Hit_MatchesMinimumOfMembers(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	world := NewWorld()
	for i := 0; i < 20; i++ {
		center := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, -random.Float64()*10-2)
		world.Add(NewSphere(center, random.Float64()+0.1, nil))
	}

	for i := 0; i < 200; i++ {
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, -1)
		ray := core.NewRay(core.NewVec3(0, 0, 0), direction)

		best := math.Inf(1)
		for _, shape := range world.Shapes() {
			if hit, isHit := shape.Hit(ray, 0.001, math.Inf(1)); isHit && hit.T < best {
				best = hit.T
			}
		}

		hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
		if math.IsInf(best, 1) {
			if isHit {
				t.Fatalf("Ray %d: no member hit but world reported t=%f", i, hit.T)
			}
			continue
		}
		if !isHit || hit.T != best {
			t.Fatalf("Ray %d: expected t=%f, got hit=%t", i, best, isHit)
		}
	}
}

func TestWorld_AddKeepsOrder(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	b := NewSphere(core.NewVec3(1, 0, 0), 1, nil)
	world := NewWorld(a)
	world.Add(b)

	if world.Len() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", world.Len())
	}
	if world.Shapes()[0] != a || world.Shapes()[1] != b {
		t.Error("Shapes should be kept in insertion order")
	}
}
