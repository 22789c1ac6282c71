package geometry

import (
	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/material"
)

// World is an insertion-ordered collection of shapes queried as one.
// It is built before rendering and must not be modified while rays are traced.
type World struct {
	shapes []Shape
}

// NewWorld creates a world containing the given shapes
func NewWorld(shapes ...Shape) *World {
	w := &World{}
	w.Add(shapes...)
	return w
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// Shapes returns the shapes in insertion order
func (w *World) Shapes() []Shape {
	return w.shapes
}

// Len returns the number of shapes in the world
func (w *World) Len() int {
	return len(w.shapes)
}

// Hit returns the nearest intersection across all shapes
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
