package geometry

import (
	"github.com/df07/shade-tree/pkg/core"
	"github.com/df07/shade-tree/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// A hit is reported only for t strictly inside (tMin, tMax).
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
