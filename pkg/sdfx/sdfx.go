// Package sdfx connects ground-truth shapes to the github.com/deadsy/sdfx
// SDF library. Shapes and worlds can be wrapped as sdf.SDF3 for evaluation
// and meshing, and sdfx's own primitives serve as an independent reference
// for the sphere and box distance fields.
package sdfx

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
	"github.com/df07/go-voxel-groundtruth/pkg/geometry"
)

var (
	// ErrEmptyBounds is returned when the clip box does not overlap the shape
	ErrEmptyBounds = errors.New("clip box does not overlap shape bounds")
	// ErrNoReference is returned by Reference for shapes sdfx cannot model
	ErrNoReference = errors.New("no sdfx reference primitive")
)

// Compile-time interface check.
var _ sdf.SDF3 = (*fieldSDF)(nil)

// distanceField is anything that answers signed distance queries
type distanceField interface {
	DistanceToPoint(p core.Vec3) float64
	BoundingBox() core.AABB
}

// fieldSDF wraps a distance field to implement sdf.SDF3.
type fieldSDF struct {
	field distanceField
	bb    sdf.Box3
}

// Evaluate returns the signed distance at p.
func (f *fieldSDF) Evaluate(p v3.Vec) float64 {
	return f.field.DistanceToPoint(fromVec(p))
}

// BoundingBox returns the clipped bounding box.
func (f *fieldSDF) BoundingBox() sdf.Box3 {
	return f.bb
}

// FromShape wraps a shape as an sdf.SDF3. Its bounding box is the shape's box
// intersected with clip, which is how an infinite plane gets finite bounds.
func FromShape(shape geometry.Shape, clip core.AABB) (sdf.SDF3, error) {
	s, err := wrap(shape, clip)
	if err != nil {
		return nil, fmt.Errorf("sdfx: %s: %w", shape.Kind(), err)
	}
	return s, nil
}

// FromWorld wraps the union distance field of a world as an sdf.SDF3.
func FromWorld(world *geometry.World, clip core.AABB) (sdf.SDF3, error) {
	if world.Len() == 0 {
		return nil, fmt.Errorf("sdfx: world: %w", ErrEmptyBounds)
	}
	s, err := wrap(world, clip)
	if err != nil {
		return nil, fmt.Errorf("sdfx: world: %w", err)
	}
	return s, nil
}

func wrap(field distanceField, clip core.AABB) (sdf.SDF3, error) {
	bounds := field.BoundingBox().Intersect(clip)
	if !bounds.IsValid() {
		return nil, ErrEmptyBounds
	}
	return &fieldSDF{
		field: field,
		bb:    sdf.Box3{Min: toVec(bounds.Min), Max: toVec(bounds.Max)},
	}, nil
}

// Reference builds the equivalent sdfx primitive for a sphere or box,
// translated to the shape's center. Planes have no sdfx counterpart.
func Reference(shape geometry.Shape) (sdf.SDF3, error) {
	var s sdf.SDF3
	var err error

	switch shape := shape.(type) {
	case *geometry.Sphere:
		s, err = sdf.Sphere3D(shape.Radius())
	case *geometry.Box:
		// sdf.Box3D takes full dimensions.
		s, err = sdf.Box3D(toVec(shape.HalfExtents().Multiply(2)), 0)
	default:
		return nil, fmt.Errorf("sdfx: %s: %w", shape.Kind(), ErrNoReference)
	}
	if err != nil {
		return nil, fmt.Errorf("sdfx: %s reference: %w", shape.Kind(), err)
	}

	m := sdf.Translate3d(toVec(shape.Center()))
	return sdf.Transform3D(s, m), nil
}

// Triangle is one face of an extracted surface mesh.
type Triangle [3]core.Vec3

// ToMesh extracts the zero level set of s with uniform marching cubes. cells
// is the number of cells along the longest bounding box axis.
func ToMesh(s sdf.SDF3, cells int) []Triangle {
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	mesh := make([]Triangle, 0, len(triangles))
	for _, tri := range triangles {
		mesh = append(mesh, Triangle{fromVec(tri[0]), fromVec(tri[1]), fromVec(tri[2])})
	}
	return mesh
}

func toVec(v core.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromVec(v v3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}
