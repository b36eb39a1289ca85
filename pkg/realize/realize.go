// Package realize walks a shape catalog and realises every entry in a
// geometry kernel, producing one bounding envelope per entry.
package realize

import (
	"errors"
	"fmt"

	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/geometry"
	"github.com/chazu/figura/pkg/kernel"
)

// Realize produces one envelope per catalog entry, in catalog order, using
// the provided geometry kernel. It never mutates the catalog.
//
// Entries the kernel rejects are skipped; the returned error joins one
// wrapped error per skipped entry, so callers may keep the envelopes that
// were realised.
func Realize(c *catalog.Catalog, k kernel.Kernel) ([]kernel.Envelope, error) {
	if c == nil {
		return nil, nil
	}

	envelopes := make([]kernel.Envelope, 0, c.Len())
	var errs []error
	for _, e := range c.Entries() {
		solid, err := Solid(k, e.Shape)
		if err != nil {
			errs = append(errs, fmt.Errorf("realize: shape %q: %w", e.Name, err))
			continue
		}
		envelopes = append(envelopes, kernel.NewEnvelope(e.Name, solid))
	}
	return envelopes, errors.Join(errs...)
}

// Solid maps one shape onto the matching kernel primitive.
func Solid(k kernel.Kernel, s geometry.Shape) (kernel.Solid, error) {
	switch shape := s.(type) {
	case geometry.Rectangle:
		d := shape.Dimensions()
		return k.Rect(d[0], d[1])
	case geometry.Parallelepiped:
		d := shape.Dimensions()
		return k.Box(d[0], d[1], d[2])
	case geometry.Sphere:
		return k.Sphere(shape.Radius())
	case geometry.Cylinder:
		return k.Cylinder(shape.Height(), shape.Radius())
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}
