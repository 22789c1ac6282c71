package scene

import (
	"fmt"
	"runtime"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/geometry"
	"golang.org/x/image/colornames"
)

// Scene contains all the elements needed for rendering.
// A scene is read-only once rendering starts.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.World
	TopColor       core.Vec3 // Background color straight up
	BottomColor    core.Vec3 // Background color straight down
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Worker goroutines, 0 for one per CPU
	BandHeight      int   // Scanlines per work item
	Seed            int64 // Seed for scene generation and sampling
	DisableJitter   bool  // Sample pixel centers instead of random sub-pixel offsets
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           1280,
		Height:          720,
		SamplesPerPixel: 30,
		MaxDepth:        50,
		NumWorkers:      runtime.NumCPU(),
		BandHeight:      16,
		Seed:            42,
	}
}

// MergeSamplingConfig overlays the non-zero fields of override onto base
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.BandHeight != 0 {
		result.BandHeight = override.BandHeight
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.DisableJitter {
		result.DisableJitter = true
	}
	return result
}

// Validate checks that the configuration can be rendered
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	if c.BandHeight < 0 {
		return fmt.Errorf("band height must not be negative, got %d", c.BandHeight)
	}
	return nil
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns the shapes to trace against
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the scene's sampling configuration
func (s *Scene) GetSamplingConfig() SamplingConfig {
	return s.SamplingConfig
}

// newScene wires a camera sized to config and an empty world with the
// default sky gradient
func newScene(config SamplingConfig, cameraConfig geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) *Scene {
	cameraConfig.Width = config.Width
	cameraConfig.AspectRatio = config.AspectRatio()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          geometry.NewWorld(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3FromColor(colornames.White),
		SamplingConfig: config,
		CameraConfig:   cameraConfig,
	}
}
