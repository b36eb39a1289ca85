package geometry

import (
	"iter"
	"slices"
)

// Parallelepiped is a rectangular box. Its faces are rectangles.
type Parallelepiped struct {
	width, height, depth float64
}

var (
	_ Polyhedron[Rectangle] = Parallelepiped{}
	_ Solid                 = Parallelepiped{}
	_ Shape                 = Parallelepiped{}
)

// NewParallelepiped returns a box with the given width, height and depth.
func NewParallelepiped(width, height, depth float64) Parallelepiped {
	return Parallelepiped{width: width, height: height, depth: depth}
}

// NewCube returns a parallelepiped with every dimension equal to side.
func NewCube(side float64) Parallelepiped {
	return NewParallelepiped(side, side, side)
}

func (p Parallelepiped) Volume() float64 {
	return p.width * p.height * p.depth
}

// OuterArea is always derived from Faces.
func (p Parallelepiped) OuterArea() float64 {
	return OuterArea[Rectangle](p)
}

// Faces yields six freshly built rectangles: w×h, w×d, h×d, then the same
// three again for the opposite sides.
func (p Parallelepiped) Faces() iter.Seq[Rectangle] {
	wh := NewRectangle(p.width, p.height)
	wd := NewRectangle(p.width, p.depth)
	hd := NewRectangle(p.height, p.depth)
	return slices.Values([]Rectangle{wh, wd, hd, wh, wd, hd})
}

// IsCube reports whether all three dimensions are equal.
func (p Parallelepiped) IsCube() bool {
	return p.width == p.height && p.height == p.depth
}

func (p Parallelepiped) Kind() Kind { return KindParallelepiped }

func (p Parallelepiped) Dimensions() []float64 {
	return []float64{p.width, p.height, p.depth}
}

func (p Parallelepiped) String() string {
	if p.IsCube() {
		return "cube(" + formatDim(p.width) + ")"
	}
	return "parallelepiped(" + formatDim(p.width) + "x" + formatDim(p.height) + "x" + formatDim(p.depth) + ")"
}
