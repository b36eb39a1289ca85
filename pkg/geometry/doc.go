// Package geometry defines immutable 2D and 3D shape values and the
// capabilities they expose: surfaces (area, perimeter), polygons (edge
// sequences), solids (outer area, volume) and polyhedra (face sequences).
// Derived measures are computed by folding over a shape's own parts.
package geometry
