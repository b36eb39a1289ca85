package geometry

import "iter"

// Surface is a 2D shape with an area and a perimeter.
type Surface interface {
	Area() float64
	Perimeter() float64
}

// Polygon is a surface described by a finite, ordered sequence of edges.
// Its perimeter is derived from the edges; see Perimeter.
type Polygon interface {
	Area() float64
	Edges() iter.Seq[Edge]
}

// Perimeter returns the sum of the edge lengths of p.
func Perimeter(p Polygon) float64 {
	return SumBy(p.Edges(), Edge.Length)
}

// CompareSurfaces orders surfaces by area.
func CompareSurfaces(a, b Surface) int {
	return CompareBy(a, b, Surface.Area)
}
