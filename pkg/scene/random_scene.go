package scene

import (
	"math/rand"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/geometry"
	"github.com/df07/shade-tree/pkg/material"
)

// NewRandomScene creates the cover scene: three large spheres surrounded by a
// field of small randomly placed spheres. Placement is seeded by config.Seed.
func NewRandomScene(config SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(12, 1, 3),
		LookAt:        core.NewVec3(-4, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.4,
		FocusDistance: 10.0,
	}

	s := newScene(config, cameraConfig, cameraOverrides)
	random := rand.New(rand.NewSource(config.Seed))

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case choice < 0.8:
				mat = material.NewLambertian(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
			case choice < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.World.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.World.Add(ground)

	return s
}
