package geometry

import (
	"iter"
	"slices"
)

// Rectangle is a polygon with a base and a height.
type Rectangle struct {
	base, height float64
}

var (
	_ Polygon = Rectangle{}
	_ Surface = Rectangle{}
	_ Shape   = Rectangle{}
)

// NewRectangle returns a rectangle with the given base and height.
func NewRectangle(base, height float64) Rectangle {
	return Rectangle{base: base, height: height}
}

// NewSquare returns a rectangle whose base and height both equal side.
func NewSquare(side float64) Rectangle {
	return NewRectangle(side, side)
}

// Base returns the base side as an edge.
func (r Rectangle) Base() Edge { return NewEdge(r.base) }

// Height returns the height side as an edge.
func (r Rectangle) Height() Edge { return NewEdge(r.height) }

func (r Rectangle) Area() float64 {
	return r.base * r.height
}

// Perimeter is always derived from Edges.
func (r Rectangle) Perimeter() float64 {
	return Perimeter(r)
}

// Edges yields the four sides in the order base, height, base, height.
// Each call builds a fresh sequence from the stored dimensions.
func (r Rectangle) Edges() iter.Seq[Edge] {
	b, h := r.Base(), r.Height()
	return slices.Values([]Edge{b, h, b, h})
}

// IsSquare reports whether base and height are equal.
func (r Rectangle) IsSquare() bool {
	return r.base == r.height
}

func (r Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Dimensions() []float64 {
	return []float64{r.base, r.height}
}

func (r Rectangle) String() string {
	if r.IsSquare() {
		return "square(" + formatDim(r.base) + ")"
	}
	return "rectangle(" + formatDim(r.base) + "x" + formatDim(r.height) + ")"
}
