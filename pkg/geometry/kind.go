package geometry

// Kind names the concrete shape family of a value.
type Kind string

const (
	KindRectangle      Kind = "rectangle"
	KindSphere         Kind = "sphere"
	KindCylinder       Kind = "cylinder"
	KindParallelepiped Kind = "parallelepiped"
)

// Planar reports whether shapes of this kind are surfaces rather than solids.
func (k Kind) Planar() bool {
	return k == KindRectangle
}

func (k Kind) String() string {
	return string(k)
}

// Shape is implemented by every concrete shape in this package.
type Shape interface {
	Kind() Kind
	// Dimensions returns the raw constructor dimensions in declaration order.
	Dimensions() []float64
}
