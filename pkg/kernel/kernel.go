// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) realise shape dimensions as kernel solids so their
// spatial extent can be inspected. The kernel abstraction allows swapping
// backends without changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid or region.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box. Planar regions
	// report zero extent along Z.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
// Constructors return an error when the backend rejects the dimensions.
type Kernel interface {
	// Rect creates a planar rectangle with its minimum corner at the origin.
	Rect(x, y float64) (Solid, error)
	// Box creates a box with its minimum corner at the origin.
	Box(x, y, z float64) (Solid, error)
	// Sphere creates a sphere centred on the origin.
	Sphere(radius float64) (Solid, error)
	// Cylinder creates a cylinder along Z centred on the origin.
	Cylinder(height, radius float64) (Solid, error)
}
