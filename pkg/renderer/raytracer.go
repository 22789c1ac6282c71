package renderer

import (
	"image"
	"math"
	"time"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/geometry"
	"github.com/df07/shade-tree/pkg/scene"
)

// hitEpsilon keeps scattered rays from re-hitting the surface they left
const hitEpsilon = 1e-4

// Scene interface to decouple the raytracer from scene construction
type Scene interface {
	GetCamera() *geometry.Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() geometry.Shape
}

// Raytracer handles the rendering process. After construction it is only
// read, so one instance is shared by all workers.
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config scene.SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s Scene, width, height int) *Raytracer {
	config := scene.DefaultSamplingConfig()
	config.Width = width
	config.Height = height

	return &Raytracer{
		scene:  s,
		width:  width,
		height: height,
		config: config,
		logger: core.NopLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config scene.SamplingConfig) {
	config.Width = rt.width
	config.Height = rt.height
	rt.config = config
}

// MergeSamplingConfig overlays the non-zero fields of override onto the current configuration
func (rt *Raytracer) MergeSamplingConfig(override scene.SamplingConfig) {
	rt.SetSamplingConfig(scene.MergeSamplingConfig(rt.config, override))
}

// GetSamplingConfig returns the active sampling configuration
func (rt *Raytracer) GetSamplingConfig() scene.SamplingConfig {
	return rt.config
}

// SetLogger sets where progress is reported; nil silences it
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}

// RayColor returns the linear radiance arriving along r
func (rt *Raytracer) RayColor(r core.Ray, sampler core.Sampler) core.Vec3 {
	return rt.rayColorRecursive(r, sampler, 0)
}

// rayColorRecursive returns the color for a given ray. Recursion stops at
// MaxDepth bounces, which bounds the stack regardless of the scene.
func (rt *Raytracer) rayColorRecursive(r core.Ray, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := rt.scene.GetWorld().Hit(r, hitEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	// Out of bounces, no more light is gathered
	if depth >= rt.config.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColorRecursive(scatter.Scattered, sampler, depth+1))
}

// SamplePixel averages SamplesPerPixel radiance samples for the pixel at
// image coordinates (i, j), where j = 0 is the top row
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.GetCamera()
	var ps PixelStats

	// Viewport t grows upwards while image rows grow downwards
	row := rt.height - 1 - j

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		du, dv := 0.5, 0.5
		if !rt.config.DisableJitter {
			du, dv = sampler.Get1D(), sampler.Get1D()
		}
		s := (float64(i) + du) / float64(rt.width)
		t := (float64(row) + dv) / float64(rt.height)

		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(rt.RayColor(ray, sampler))
	}

	return ps.GetColor()
}

// RenderBounds renders pixels within bounds into the row-major buffer
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, buffer []uint32, sampler core.Sampler) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Bands:       1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			colorVec := rt.SamplePixel(i, j, sampler)
			buffer[j*rt.width+i] = core.ToRGB24(colorVec.GammaCorrect())
		}
	}

	stats.TotalSamples = stats.TotalPixels * rt.config.SamplesPerPixel
	stats.finalize()
	return stats
}

// RenderPass renders the full image in parallel bands and returns a
// row-major buffer of packed 0xRRGGBB pixels, top row first
func (rt *Raytracer) RenderPass() ([]uint32, RenderStats) {
	startTime := time.Now()
	buffer := make([]uint32, rt.width*rt.height)

	bands := NewBandGrid(rt.width, rt.height, rt.config.BandHeight, rt.config.Seed)
	pool := NewWorkerPool(rt, rt.config.NumWorkers, len(bands))
	pool.Start()

	for i, band := range bands {
		pool.SubmitTask(BandTask{
			Band:   band,
			TaskID: i,
			Buffer: buffer,
		})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for completed := 1; completed <= len(bands); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
		rt.logger.Printf("band %d/%d done\n", completed, len(bands))
	}
	pool.Stop()

	stats.finalize()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Rendered %dx%d (%d samples/pixel, %d samples) in %v using %d workers\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, stats.TotalSamples, stats.Duration, stats.Workers)

	return buffer, stats
}
