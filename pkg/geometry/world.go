package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// World is an immutable collection of ground-truth shapes
type World struct {
	shapes []Shape
}

// WorldHit is the nearest intersection found across a world
type WorldHit struct {
	Intersection
	Shape Shape // Shape that was hit
	Index int   // Index of Shape in the world
}

// NewWorld creates a world from the given shapes. The slice is copied.
func NewWorld(shapes ...Shape) *World {
	return &World{shapes: append([]Shape(nil), shapes...)}
}

// Shapes returns a copy of the shapes in the world
func (w *World) Shapes() []Shape {
	return append([]Shape(nil), w.shapes...)
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.shapes)
}

// DistanceToPoint returns the minimum signed distance from p over all shapes,
// or +Inf for an empty world.
func (w *World) DistanceToPoint(p core.Vec3) float64 {
	distance := math.Inf(1)
	for _, shape := range w.shapes {
		distance = math.Min(distance, shape.DistanceToPoint(p))
	}
	return distance
}

// RayIntersection returns the nearest hit along ray within maxDist. Shapes
// without ray support are skipped; unsupported reports how many there were.
func (w *World) RayIntersection(ray core.Ray, maxDist float64) (hit *WorldHit, unsupported int) {
	closest := maxDist

	for i, shape := range w.shapes {
		intersection, status := shape.RayIntersection(ray, closest)
		switch status {
		case Hit:
			if hit == nil || intersection.Distance < hit.Distance {
				closest = intersection.Distance
				hit = &WorldHit{Intersection: *intersection, Shape: shape, Index: i}
			}
		case Unsupported:
			unsupported++
		case Miss:
		}
	}

	return hit, unsupported
}

// BoundingBox returns the union of every shape's bounding box
func (w *World) BoundingBox() core.AABB {
	if len(w.shapes) == 0 {
		return core.AABB{}
	}
	bbox := w.shapes[0].BoundingBox()
	for _, shape := range w.shapes[1:] {
		bbox = bbox.Union(shape.BoundingBox())
	}
	return bbox
}

// Validate checks every shape and joins the failures
func (w *World) Validate() error {
	var errs []error
	for i, shape := range w.shapes {
		if err := shape.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
