package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// BoxInsideEpsilon is the outside distance below which a point is treated
// as inside the box and measured against the nearest face instead.
const BoxInsideEpsilon = 1e-6

// Box represents a solid axis-aligned box
type Box struct {
	shapeBase
	halfExtents core.Vec3 // Half-length along each axis, measured from the center
}

// NewBox creates a new white axis-aligned box.
// halfExtents of (1,1,1) creates a 2x2x2 box.
func NewBox(center, halfExtents core.Vec3) *Box {
	return NewColoredBox(center, halfExtents, core.White)
}

// NewColoredBox creates a new axis-aligned box with the given display color
func NewColoredBox(center, halfExtents core.Vec3, color core.Color) *Box {
	return &Box{
		shapeBase:   shapeBase{center: center, color: color},
		halfExtents: halfExtents,
	}
}

func (b *Box) Kind() Kind { return KindBox }

// HalfExtents returns the half-length of the box along each axis
func (b *Box) HalfExtents() core.Vec3 { return b.halfExtents }

// DistanceToPoint returns the signed distance to the box surface.
//
// Outside, this is the length of the per-axis overshoot vector. When that
// length falls below BoxInsideEpsilon the point is inside (or on a face),
// and the result is the largest per-axis penetration, which is negative with
// magnitude equal to the distance to the nearest face. The two branches are
// not guaranteed to agree exactly at the epsilon seam.
func (b *Box) DistanceToPoint(p core.Vec3) float64 {
	below := b.center.Subtract(b.halfExtents).Subtract(p) // center - half - p
	above := p.Subtract(b.center).Subtract(b.halfExtents) // p - center - half

	outside := below.Max(core.Vec3{}).Max(above)
	distance := outside.Length()

	// Basically zero, so the point is inside
	if distance < BoxInsideEpsilon {
		distance = below.Max(above).MaxComponent()
	}

	return distance
}

// RayIntersection is not defined for boxes and always reports Unsupported
func (b *Box) RayIntersection(ray core.Ray, maxDist float64) (*Intersection, IntersectStatus) {
	return nil, Unsupported
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.center.Subtract(b.halfExtents), b.center.Add(b.halfExtents))
}

func (b *Box) Validate() error {
	if err := b.validateCenter(KindBox); err != nil {
		return err
	}
	if !b.halfExtents.IsFinite() {
		return fmt.Errorf("%w: box half extents %v are not finite", ErrInvalidShape, b.halfExtents)
	}
	if math.Min(b.halfExtents.X, math.Min(b.halfExtents.Y, b.halfExtents.Z)) < 0 {
		return fmt.Errorf("%w: box half extents must be >= 0, got %v", ErrInvalidShape, b.halfExtents)
	}
	return nil
}
