// Package geometry implements the analytic ground-truth shapes used to
// describe simulated scenes: spheres, axis-aligned boxes and infinite
// planes. Each shape answers two pure queries, a signed distance to a point
// and the first intersection of a range-limited ray.
package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// ErrInvalidShape is wrapped by every error returned from Validate
var ErrInvalidShape = errors.New("invalid shape")

// Kind identifies which shape variant a Shape is
type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IntersectStatus is the outcome of a ray query
type IntersectStatus int

const (
	// Miss means the ray does not reach the surface within [0, maxDist]
	Miss IntersectStatus = iota
	// Hit means an Intersection was returned
	Hit
	// Unsupported means the shape has no ray intersection
	Unsupported
)

func (s IntersectStatus) String() string {
	switch s {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Unsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("IntersectStatus(%d)", int(s))
	}
}

// Intersection is the first point where a ray meets a surface
type Intersection struct {
	Point    core.Vec3 // Point of intersection
	Distance float64   // Parameter t along the ray
}

// Shape is the closed set of ground-truth shapes. Implementations are
// immutable, so every method is safe for concurrent use.
type Shape interface {
	Kind() Kind
	Center() core.Vec3
	Color() core.Color

	// DistanceToPoint returns the signed distance from p to the surface:
	// negative inside, positive outside.
	DistanceToPoint(p core.Vec3) float64

	// RayIntersection returns the nearest surface point along ray with t in
	// [0, maxDist]. Distances are in units of t, so ray.Direction should be
	// unit length.
	RayIntersection(ray core.Ray, maxDist float64) (*Intersection, IntersectStatus)

	BoundingBox() core.AABB

	// Validate checks the constructor preconditions. The queries never call
	// it; callers that build shapes from untrusted input should.
	Validate() error

	sealed()
}

// shapeBase holds the attributes common to every shape
type shapeBase struct {
	center core.Vec3
	color  core.Color
}

func (b shapeBase) Center() core.Vec3 { return b.center }
func (b shapeBase) Color() core.Color { return b.color }
func (shapeBase) sealed() {}

func (b shapeBase) validateCenter(kind Kind) error {
	if !b.center.IsFinite() {
		return fmt.Errorf("%w: %s center %v is not finite", ErrInvalidShape, kind, b.center)
	}
	return nil
}

// checkRange accepts a ray parameter in [0, maxDist]
func checkRange(ray core.Ray, t, maxDist float64) (*Intersection, IntersectStatus) {
	// Intersection behind the origin
	if t < 0 {
		return nil, Miss
	}
	// Beyond sensor range
	if t > maxDist {
		return nil, Miss
	}
	return &Intersection{Point: ray.At(t), Distance: t}, Hit
}
