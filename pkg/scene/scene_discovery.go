package scene

import (
	"fmt"
	"sort"

	"github.com/df07/shade-tree/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

// Builder constructs a scene from a merged sampling configuration
type Builder func(config SamplingConfig, cameraOverrides ...geometry.CameraConfig) *Scene

type registration struct {
	info  SceneInfo
	build Builder
}

var builtInScenes = map[string]registration{
	"random": {
		info: SceneInfo{
			ID:          "random",
			DisplayName: "Random Spheres",
			Description: "Glass, diffuse and metal spheres among hundreds of small random spheres",
		},
		build: NewRandomScene,
	},
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Five spheres covering every material on a green ground",
		},
		build: NewDefaultScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One diffuse sphere in front of a pinhole camera",
		},
		build: NewSingleSphereScene,
	},
	"sphere-grid": {
		info: SceneInfo{
			ID:          "sphere-grid",
			DisplayName: "Sphere Grid",
			Description: "10x10 grid of rainbow-colored metallic spheres",
		},
		build: NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, reg := range builtInScenes {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene. Non-zero fields of config override
// DefaultSamplingConfig.
func Create(name string, config SamplingConfig, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	reg, ok := builtInScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	merged := MergeSamplingConfig(DefaultSamplingConfig(), config)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	return reg.build(merged, cameraOverrides...), nil
}
