package scene

import (
	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/geometry"
	"github.com/df07/shade-tree/pkg/material"
)

// NewDefaultScene creates a small scene with diffuse, glass and metal spheres on a green ground
func NewDefaultScene(config SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0.3, 1.5),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          50.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Focus on the look-at point
	}

	s := newScene(config, cameraConfig, cameraOverrides)

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0.3, -0.1, -1), 0.4, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(-3.5, 0.2, -3), 0.8, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-0.4, 0, -1), 0.3, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1.2, 0, -1), 0.3, material.NewMetal(core.NewVec3(0.8, 0.6, 0.4), 0.1)),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.8, 0.2))),
	)

	return s
}

// NewSingleSphereScene creates one diffuse sphere in front of a pinhole camera at the origin
func NewSingleSphereScene(config SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}

	s := newScene(config, cameraConfig, cameraOverrides)
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	return s
}
