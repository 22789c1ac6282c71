package renderer

import (
	"fmt"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/scene"
)

// Render draws the random spheres scene at the given size and sample count
// and returns width*height packed 0xRRGGBB pixels, row-major, top row first.
func Render(width, height, samples int) ([]uint32, error) {
	if width <= 0 || height <= 0 || samples <= 0 {
		return nil, fmt.Errorf("invalid render size %dx%d with %d samples", width, height, samples)
	}
	return RenderScene("random", scene.SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
	}, nil)
}

// RenderScene renders a built-in scene. Non-zero fields of config override
// the defaults; logger may be nil.
func RenderScene(name string, config scene.SamplingConfig, logger core.Logger) ([]uint32, error) {
	if config.Width < 0 || config.Height < 0 || config.SamplesPerPixel < 0 {
		return nil, fmt.Errorf("invalid render size %dx%d with %d samples", config.Width, config.Height, config.SamplesPerPixel)
	}

	s, err := scene.Create(name, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	rt := NewRaytracer(s, s.SamplingConfig.Width, s.SamplingConfig.Height)
	rt.SetSamplingConfig(s.SamplingConfig)
	rt.SetLogger(logger)

	buffer, _ := rt.RenderPass()
	return buffer, nil
}

// BlankScreen returns a solid white buffer
func BlankScreen(width, height int) []uint32 {
	buffer := make([]uint32, width*height)
	for i := range buffer {
		buffer[i] = 0xFFFFFF
	}
	return buffer
}

// Gradient returns a debug buffer whose red channel follows the row and
// green channel follows the column
func Gradient(width, height int) []uint32 {
	buffer := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := core.NewVec3(float64(y)/float64(height), float64(x)/float64(width), 0)
			buffer[y*width+x] = core.ToRGB24(color)
		}
	}
	return buffer
}
