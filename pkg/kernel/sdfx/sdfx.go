// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/chazu/figura/pkg/kernel"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// sdfxRegion wraps an sdf.SDF2 to implement kernel.Solid with zero depth.
type sdfxRegion struct {
	s sdf.SDF2
}

// BoundingBox returns the planar bounding box lifted to Z=0.
func (r *sdfxRegion) BoundingBox() (min, max [3]float64) {
	bb := r.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, 0}
	max = [3]float64{bb.Max.X, bb.Max.Y, 0}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// Rect creates a rectangle with its minimum corner at the origin.
// sdf.Box2D centres the box, so it is shifted by half its size.
func (k *SdfxKernel) Rect(x, y float64) (kernel.Solid, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("sdfx.Box2D: negative size %gx%g", x, y)
	}
	s := sdf.Box2D(v2.Vec{X: x, Y: y}, 0)
	m := sdf.Translate2d(v2.Vec{X: x / 2, Y: y / 2})
	return &sdfxRegion{s: sdf.Transform2D(s, m)}, nil
}

// Box creates a box with its minimum corner at the origin.
func (k *SdfxKernel) Box(x, y, z float64) (kernel.Solid, error) {
	if x < 0 || y < 0 || z < 0 {
		return nil, fmt.Errorf("sdfx.Box3D: negative size %gx%gx%g", x, y, z)
	}
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	// Shift from center-origin to min-corner-origin.
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})
	return &sdfxSolid{s: sdf.Transform3D(s, m)}, nil
}

// Sphere creates a sphere centred on the origin.
func (k *SdfxKernel) Sphere(radius float64) (kernel.Solid, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Sphere3D: %w", err)
	}
	return &sdfxSolid{s: s}, nil
}

// Cylinder creates a cylinder with the given height and radius, centred on
// the origin with its axis along Z.
func (k *SdfxKernel) Cylinder(height, radius float64) (kernel.Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	return &sdfxSolid{s: s}, nil
}
