package catalog

import (
	"slices"

	"github.com/chazu/figura/pkg/geometry"
)

// Measurement is the serialisable summary of one entry. Planar shapes fill
// Area and Perimeter; solids fill OuterArea and Volume.
type Measurement struct {
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Shape      string    `json:"shape"`
	Dimensions []float64 `json:"dimensions"`
	Area       *float64  `json:"area,omitempty"`
	Perimeter  *float64  `json:"perimeter,omitempty"`
	OuterArea  *float64  `json:"outer_area,omitempty"`
	Volume     *float64  `json:"volume,omitempty"`
}

// Measure computes the measurement row for e.
func Measure(e *Entry) Measurement {
	m := Measurement{
		Name:       e.Name,
		Kind:       e.Shape.Kind().String(),
		Shape:      describe(e.Shape),
		Dimensions: e.Shape.Dimensions(),
	}
	if s, ok := e.Shape.(geometry.Surface); ok {
		area, perimeter := s.Area(), s.Perimeter()
		m.Area, m.Perimeter = &area, &perimeter
	}
	if s, ok := e.Shape.(geometry.Solid); ok {
		outer, volume := s.OuterArea(), s.Volume()
		m.OuterArea, m.Volume = &outer, &volume
	}
	return m
}

// MeasureAll measures every entry of c in insertion order.
func (c *Catalog) MeasureAll() []Measurement {
	out := make([]Measurement, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, Measure(e))
	}
	return out
}

// Sorted returns the entries with surfaces first, ordered by area, followed
// by solids ordered by volume. Both groups use the truncating comparators
// and a stable sort, so near-equal measures keep insertion order.
func (c *Catalog) Sorted() []*Entry {
	surfaces := c.Surfaces()
	slices.SortStableFunc(surfaces, func(a, b *Entry) int {
		return geometry.CompareSurfaces(a.Shape.(geometry.Surface), b.Shape.(geometry.Surface))
	})
	solids := c.Solids()
	slices.SortStableFunc(solids, func(a, b *Entry) int {
		return geometry.CompareSolids(a.Shape.(geometry.Solid), b.Shape.(geometry.Solid))
	})
	return append(surfaces, solids...)
}

func describe(s geometry.Shape) string {
	if str, ok := s.(interface{ String() string }); ok {
		return str.String()
	}
	return s.Kind().String()
}
