package geometry

import "math"

// Cylinder is a right circular cylinder.
type Cylinder struct {
	radius, height float64
}

var (
	_ Solid = Cylinder{}
	_ Shape = Cylinder{}
)

// NewCylinder returns a cylinder with the given radius and height.
func NewCylinder(radius, height float64) Cylinder {
	return Cylinder{radius: radius, height: height}
}

// Radius returns the cylinder radius.
func (c Cylinder) Radius() float64 { return c.radius }

// Height returns the cylinder height.
func (c Cylinder) Height() float64 { return c.height }

// Volume returns πr²h.
func (c Cylinder) Volume() float64 {
	return math.Pi * math.Pow(c.radius, 2) * c.height
}

// OuterArea returns 2·(2πr) + h·(2πr). The caps contribute their
// circumference rather than πr²; callers rely on this exact expression.
func (c Cylinder) OuterArea() float64 {
	circumference := math.Pi * 2 * c.radius
	return 2*circumference + c.height*circumference
}

func (c Cylinder) Kind() Kind { return KindCylinder }

func (c Cylinder) Dimensions() []float64 {
	return []float64{c.radius, c.height}
}

func (c Cylinder) String() string {
	return "cylinder(" + formatDim(c.radius) + "x" + formatDim(c.height) + ")"
}
