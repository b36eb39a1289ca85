package geometry

import "iter"

// Solid is a 3D shape with an outer (total) area and a volume.
type Solid interface {
	OuterArea() float64
	Volume() float64
}

// Polyhedron is a solid described by a finite, ordered sequence of
// polygonal faces. Its outer area is derived from the faces; see OuterArea.
type Polyhedron[P Polygon] interface {
	Volume() float64
	Faces() iter.Seq[P]
}

// OuterArea returns the sum of the face areas of p.
func OuterArea[P Polygon](p Polyhedron[P]) float64 {
	return SumBy(p.Faces(), func(face P) float64 { return face.Area() })
}

// CompareSolids orders solids by volume.
func CompareSolids(a, b Solid) int {
	return CompareBy(a, b, Solid.Volume)
}
