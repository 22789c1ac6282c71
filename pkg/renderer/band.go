package renderer

import (
	"image"

	"github.com/df07/shade-tree/pkg/core"
)

// Band is a horizontal strip of full-width scanlines rendered as one task
type Band struct {
	ID      int             // Unique band identifier, top band is 0
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1), y grows downwards
	Sampler core.Sampler    // Band-specific sampler for deterministic results
}

// NewBand creates a band whose sampler is derived from seed and the band ID
func NewBand(id int, bounds image.Rectangle, seed int64) *Band {
	return &Band{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewBandGrid splits the image into disjoint bands of at most bandHeight rows
func NewBandGrid(width, height, bandHeight int, seed int64) []*Band {
	if bandHeight <= 0 {
		bandHeight = 1
	}

	var bands []*Band
	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := min(y0+bandHeight, height)
		bands = append(bands, NewBand(len(bands), image.Rect(0, y0, width, y1), seed))
	}
	return bands
}
