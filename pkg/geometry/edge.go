package geometry

import "strconv"

// Edge is a single side of a polygon.
type Edge struct {
	length float64
}

// NewEdge returns an edge of the given length. Negative lengths are kept as is.
func NewEdge(length float64) Edge {
	return Edge{length: length}
}

// Length returns the edge length.
func (e Edge) Length() float64 {
	return e.length
}

// Compare orders edges by length using CompareBy.
func (e Edge) Compare(other Edge) int {
	return CompareBy(e, other, Edge.Length)
}

func (e Edge) String() string {
	return "edge(" + formatDim(e.length) + ")"
}

// formatDim renders a dimension in its shortest round-tripping form.
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
