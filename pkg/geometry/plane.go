package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// ParallelEpsilon is the |direction . normal| below which a ray is treated
// as parallel to a plane.
const ParallelEpsilon = 1e-6

// unitNormalTolerance bounds how far |normal| may stray from 1 in Validate
const unitNormalTolerance = 1e-6

// Plane represents an infinite plane through a point with a unit normal
type Plane struct {
	shapeBase
	normal core.Vec3   // Must already be unit length
	trace  core.Logger // Optional ray parameter trace, nil when disabled
}

// NewPlane creates a new white plane through center.
// The normal is used as given and must be unit length.
func NewPlane(center, normal core.Vec3) *Plane {
	return NewColoredPlane(center, normal, core.White)
}

// NewColoredPlane creates a new plane with the given display color
func NewColoredPlane(center, normal core.Vec3, color core.Color) *Plane {
	return &Plane{
		shapeBase: shapeBase{center: center, color: color},
		normal:    normal,
	}
}

// WithTraceLogger returns a copy of the plane that logs the ray parameter of
// every non-parallel RayIntersection call to logger.
func (p *Plane) WithTraceLogger(logger core.Logger) *Plane {
	traced := *p
	traced.trace = logger
	return &traced
}

func (p *Plane) Kind() Kind { return KindPlane }

// Normal returns the plane normal
func (p *Plane) Normal() core.Vec3 { return p.normal }

// DistanceToPoint returns the signed distance to the plane, positive on the
// side the normal points toward.
func (p *Plane) DistanceToPoint(point core.Vec3) float64 {
	// d in ax + by + cz + d = 0
	d := -p.normal.Dot(p.center)
	offset := d / p.normal.Length()

	return p.normal.Dot(point) + offset
}

// RayIntersection returns where the ray crosses the plane
func (p *Plane) RayIntersection(ray core.Ray, maxDist float64) (*Intersection, IntersectStatus) {
	denominator := ray.Direction.Dot(p.normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < ParallelEpsilon {
		return nil, Miss
	}

	t := p.center.Subtract(ray.Origin).Dot(p.normal) / denominator
	if p.trace != nil {
		p.trace.Printf("plane ray parameter t=%g\n", t)
	}

	return checkRange(ray, t, maxDist)
}

// BoundingBox returns a bounding box for this plane
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001 // Small thickness to avoid zero-width bounding box

	switch axisAlignment(p.normal) {
	case 0:
		// Perpendicular to X axis
		x := p.center.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -largeValue, -largeValue),
			core.NewVec3(x+epsilon, largeValue, largeValue),
		)
	case 1:
		// Perpendicular to Y axis
		y := p.center.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-epsilon, -largeValue),
			core.NewVec3(largeValue, y+epsilon, largeValue),
		)
	case 2:
		// Perpendicular to Z axis
		z := p.center.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-epsilon),
			core.NewVec3(largeValue, largeValue, z+epsilon),
		)
	default:
		// Not axis-aligned - use large bounding box (less optimal but correct)
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}

func (p *Plane) Validate() error {
	if err := p.validateCenter(KindPlane); err != nil {
		return err
	}
	if !p.normal.IsFinite() {
		return fmt.Errorf("%w: plane normal %v is not finite", ErrInvalidShape, p.normal)
	}
	if length := p.normal.Length(); math.Abs(length-1) > unitNormalTolerance {
		return fmt.Errorf("%w: plane normal must be unit length, got |n|=%g", ErrInvalidShape, length)
	}
	return nil
}

// axisAlignment returns the axis (0=X, 1=Y, 2=Z) a normal points along,
// or -1 if it is not axis-aligned.
func axisAlignment(normal core.Vec3) int {
	const tolerance = 1e-9
	switch {
	case math.Abs(normal.Y) < tolerance && math.Abs(normal.Z) < tolerance:
		return 0
	case math.Abs(normal.X) < tolerance && math.Abs(normal.Z) < tolerance:
		return 1
	case math.Abs(normal.X) < tolerance && math.Abs(normal.Y) < tolerance:
		return 2
	default:
		return -1
	}
}
