package scene

import (
	"math"
	"testing"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/geometry"
	"github.com/df07/shade-tree/pkg/material"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"random scene", "random", false},
		{"default scene", "default", false},
		{"single sphere scene", "single-sphere", false},
		{"sphere grid scene", "sphere-grid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneType, SamplingConfig{Width: 64, Height: 32})
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Camera == nil {
				t.Error("Scene should have a camera")
			}
			if s.World.Len() == 0 {
				t.Error("Scene should contain shapes")
			}
			if s.CameraConfig.AspectRatio != 2.0 {
				t.Errorf("Camera aspect ratio should follow image size, got %f", s.CameraConfig.AspectRatio)
			}
			if s.SamplingConfig.SamplesPerPixel != DefaultSamplingConfig().SamplesPerPixel {
				t.Errorf("Unset fields should come from the defaults, got %+v", s.SamplingConfig)
			}
		})
	}
}

func TestCreate_InvalidConfig(t *testing.T) {
	if _, err := Create("default", SamplingConfig{Width: -1}); err == nil {
		t.Error("Expected error for negative width")
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtInScenes) {
		t.Fatalf("Expected %d scenes, got %d", len(builtInScenes), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].ID >= scenes[i].ID {
			t.Errorf("Scenes should be sorted by ID: %q before %q", scenes[i-1].ID, scenes[i].ID)
		}
	}
	for _, info := range scenes {
		if _, err := Create(info.ID, SamplingConfig{}); err != nil {
			t.Errorf("Listed scene %q cannot be created: %v", info.ID, err)
		}
	}
}

func TestNewRandomScene_Deterministic(t *testing.T) {
	config := DefaultSamplingConfig()
	a := NewRandomScene(config)
	b := NewRandomScene(config)

	if a.World.Len() != b.World.Len() {
		t.Fatalf("Same seed produced %d and %d shapes", a.World.Len(), b.World.Len())
	}
	for i := range a.World.Shapes() {
		sa := a.World.Shapes()[i].(*geometry.Sphere)
		sb := b.World.Shapes()[i].(*geometry.Sphere)
		if !sa.Center.Equals(sb.Center) || sa.Radius != sb.Radius {
			t.Fatalf("Shape %d differs between runs", i)
		}
	}
}

func TestNewRandomScene_Layout(t *testing.T) {
	s := NewRandomScene(DefaultSamplingConfig())

	// 3 feature spheres + up to 22*22 small ones + ground
	if s.World.Len() < 4 || s.World.Len() > 3+22*22+1 {
		t.Fatalf("Unexpected shape count %d", s.World.Len())
	}

	clearing := core.NewVec3(4, 0.2, 0)
	shapes := s.World.Shapes()
	for _, shape := range shapes[3 : len(shapes)-1] {
		sphere := shape.(*geometry.Sphere)
		if sphere.Radius != 0.2 {
			t.Errorf("Small sphere has radius %f", sphere.Radius)
		}
		if sphere.Center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("Small sphere at %v intrudes on the metal sphere", sphere.Center)
		}
		if metal, ok := sphere.Material.(*material.Metal); ok && (metal.Fuzzness < 0 || metal.Fuzzness >= 0.5) {
			t.Errorf("Metal fuzz %f outside [0, 0.5)", metal.Fuzzness)
		}
	}

	ground := shapes[len(shapes)-1].(*geometry.Sphere)
	if ground.Radius != 1000 {
		t.Errorf("Expected ground sphere last, got radius %f", ground.Radius)
	}
}

func TestSingleSphereScene_CenterRay(t *testing.T) {
	s := NewSingleSphereScene(SamplingConfig{Width: 10, Height: 10})
	ray := s.Camera.GetRay(0.5, 0.5, core.NewSequenceSampler(0.5))

	hit, isHit := s.World.Hit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Center ray should hit the sphere")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-12 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestMergeSamplingConfig(t *testing.T) {
	base := DefaultSamplingConfig()
	merged := MergeSamplingConfig(base, SamplingConfig{SamplesPerPixel: 5, DisableJitter: true})

	if merged.SamplesPerPixel != 5 || !merged.DisableJitter {
		t.Errorf("Override not applied: %+v", merged)
	}
	if merged.Width != base.Width || merged.MaxDepth != base.MaxDepth {
		t.Errorf("Base fields should be kept: %+v", merged)
	}
}

func TestSamplingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *SamplingConfig)
		wantErr bool
	}{
		{"defaults", func(c *SamplingConfig) {}, false},
		{"zero width", func(c *SamplingConfig) { c.Width = 0 }, true},
		{"zero height", func(c *SamplingConfig) { c.Height = 0 }, true},
		{"zero samples", func(c *SamplingConfig) { c.SamplesPerPixel = 0 }, true},
		{"zero depth", func(c *SamplingConfig) { c.MaxDepth = 0 }, true},
		{"negative workers", func(c *SamplingConfig) { c.NumWorkers = -1 }, true},
		{"auto workers", func(c *SamplingConfig) { c.NumWorkers = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultSamplingConfig()
			tt.modify(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOklchToRGB_InRange(t *testing.T) {
	for hue := 0.0; hue < 360; hue += 30 {
		c := oklchToRGB(0.65, 0.25, hue)
		for _, channel := range []float64{c.X, c.Y, c.Z} {
			if channel < 0 || channel > 1 {
				t.Errorf("Hue %f produced out of range color %v", hue, c)
			}
		}
	}
}
