package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// Sphere represents a solid sphere
type Sphere struct {
	shapeBase
	radius float64
}

// NewSphere creates a new white sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return NewColoredSphere(center, radius, core.White)
}

// NewColoredSphere creates a new sphere with the given display color
func NewColoredSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		shapeBase: shapeBase{center: center, color: color},
		radius:    radius,
	}
}

func (s *Sphere) Kind() Kind { return KindSphere }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// DistanceToPoint returns |center - p| - radius
func (s *Sphere) DistanceToPoint(p core.Vec3) float64 {
	return s.center.Subtract(p).Length() - s.radius
}

// RayIntersection solves the ray/sphere quadratic and reports only the near
// root. A ray starting inside the sphere has a negative near root and so
// misses; the exit point is never returned.
func (s *Sphere) RayIntersection(ray core.Ray, maxDist float64) (*Intersection, IntersectStatus) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)
	projection := ray.Direction.Dot(oc)

	discriminant := projection*projection - oc.LengthSquared() + s.radius*s.radius

	// No real roots
	if discriminant < 0 {
		return nil, Miss
	}

	t := -projection - math.Sqrt(discriminant)
	return checkRange(ray, t, maxDist)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.radius, s.radius, s.radius)
	return core.NewAABB(
		s.center.Subtract(radius),
		s.center.Add(radius),
	)
}

func (s *Sphere) Validate() error {
	if err := s.validateCenter(KindSphere); err != nil {
		return err
	}
	if !(s.radius > 0) || math.IsInf(s.radius, 0) {
		return fmt.Errorf("%w: sphere radius must be finite and > 0, got %g", ErrInvalidShape, s.radius)
	}
	return nil
}
