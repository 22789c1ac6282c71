package renderer

import (
	"testing"

	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/scene"
)

func TestNewBandGrid_CoversImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		bandHeight    int
		expectedBands int
	}{
		{"exact fit", 10, 8, 4, 2},
		{"partial last band", 10, 9, 4, 3},
		{"band taller than image", 5, 3, 16, 1},
		{"single rows", 2, 5, 1, 5},
		{"invalid band height", 2, 3, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := NewBandGrid(tt.width, tt.height, tt.bandHeight, 42)
			if len(bands) != tt.expectedBands {
				t.Fatalf("Expected %d bands, got %d", tt.expectedBands, len(bands))
			}

			covered := make([]int, tt.height)
			for i, band := range bands {
				if band.ID != i {
					t.Errorf("Band %d has ID %d", i, band.ID)
				}
				if band.Bounds.Min.X != 0 || band.Bounds.Max.X != tt.width {
					t.Errorf("Band %d does not span full width: %v", i, band.Bounds)
				}
				for y := band.Bounds.Min.Y; y < band.Bounds.Max.Y; y++ {
					covered[y]++
				}
			}
			for y, count := range covered {
				if count != 1 {
					t.Errorf("Row %d covered %d times", y, count)
				}
			}
		})
	}
}

func TestNewBand_SeedsDiffer(t *testing.T) {
	bands := NewBandGrid(4, 4, 1, 42)
	first := bands[0].Sampler.Get1D()
	second := bands[1].Sampler.Get1D()
	if first == second {
		t.Errorf("Adjacent bands should draw different samples, both got %f", first)
	}

	again := NewBandGrid(4, 4, 1, 42)
	if again[0].Sampler.Get1D() != first {
		t.Error("Same seed and band ID should reproduce the same samples")
	}
}

func TestWorkerPool_ProcessesAllTasks(t *testing.T) {
	s, err := scene.Create("single-sphere", scene.SamplingConfig{Width: 6, Height: 6, SamplesPerPixel: 1})
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	rt := NewRaytracer(s, 6, 6)
	rt.SetSamplingConfig(s.SamplingConfig)

	bands := NewBandGrid(6, 6, 2, 1)
	buffer := make([]uint32, 36)
	for i := range buffer {
		buffer[i] = 0xFFFFFFFF // Sentinel outside the 24-bit range
	}

	pool := NewWorkerPool(rt, 3, len(bands))
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()
	for i, band := range bands {
		pool.SubmitTask(BandTask{Band: band, TaskID: i, Buffer: buffer})
	}

	seen := make(map[int]bool)
	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		seen[result.TaskID] = true
		if result.Stats.TotalPixels != 12 {
			t.Errorf("Task %d: expected 12 pixels, got %d", result.TaskID, result.Stats.TotalPixels)
		}
	}
	pool.Stop()

	if len(seen) != len(bands) {
		t.Errorf("Expected %d distinct results, got %d", len(bands), len(seen))
	}
	for i, px := range buffer {
		if px > 0xFFFFFF {
			t.Errorf("Pixel %d was never written", i)
		}
	}
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(nil, 0, 1)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}

func TestRenderBounds_WritesOnlyBounds(t *testing.T) {
	s, err := scene.Create("single-sphere", scene.SamplingConfig{Width: 4, Height: 4, SamplesPerPixel: 1})
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	rt := NewRaytracer(s, 4, 4)
	rt.SetSamplingConfig(s.SamplingConfig)

	buffer := make([]uint32, 16)
	for i := range buffer {
		buffer[i] = 0xFFFFFFFF
	}
	band := NewBandGrid(4, 4, 2, 1)[1]
	stats := rt.RenderBounds(band.Bounds, buffer, core.NewSeededSampler(1))

	if stats.TotalPixels != 8 || stats.TotalSamples != 8 {
		t.Errorf("Expected 8 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	for i, px := range buffer {
		inBand := i >= 8
		if inBand && px > 0xFFFFFF {
			t.Errorf("Pixel %d inside band not written", i)
		}
		if !inBand && px != 0xFFFFFFFF {
			t.Errorf("Pixel %d outside band was overwritten", i)
		}
	}
}
