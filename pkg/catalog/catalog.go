package catalog

import (
	"errors"
	"fmt"

	"github.com/chazu/figura/pkg/geometry"
	"github.com/samber/lo"
)

// ErrDuplicateName is returned when a name is registered twice.
var ErrDuplicateName = errors.New("catalog: duplicate shape name")

// Entry is a named shape in a catalog.
type Entry struct {
	Name  string
	Shape geometry.Shape
	// Index is the insertion position, starting at 0.
	Index int
}

// Catalog is an insertion-ordered set of named shapes.
type Catalog struct {
	entries   []*Entry
	nameIndex map[string]int
	// anon numbers unnamed entries, starting at 1 for each catalog.
	anon int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		nameIndex: make(map[string]int),
	}
}

// Add registers shape under name. An empty name is replaced by a generated
// anonymous one.
func (c *Catalog) Add(name string, shape geometry.Shape) (*Entry, error) {
	if shape == nil {
		return nil, fmt.Errorf("catalog: nil shape for %q", name)
	}
	if name == "" {
		name = c.nextAnonName()
	}
	if _, ok := c.nameIndex[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	e := &Entry{Name: name, Shape: shape, Index: len(c.entries)}
	c.entries = append(c.entries, e)
	c.nameIndex[name] = e.Index
	return e, nil
}

// nextAnonName returns the next unused _anon_N name.
func (c *Catalog) nextAnonName() string {
	for {
		c.anon++
		name := fmt.Sprintf("_anon_%d", c.anon)
		if _, taken := c.nameIndex[name]; !taken {
			return name
		}
	}
}

// Lookup returns the entry with the given name, or nil.
func (c *Catalog) Lookup(name string) *Entry {
	i, ok := c.nameIndex[name]
	if !ok {
		return nil
	}
	return c.entries[i]
}

// MustLookup returns the entry with the given name, or panics.
func (c *Catalog) MustLookup(name string) *Entry {
	e := c.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("catalog: no shape named %q", name))
	}
	return e
}

// Entries returns all entries in insertion order. The slice is a copy.
func (c *Catalog) Entries() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names returns the entry names in insertion order.
func (c *Catalog) Names() []string {
	return lo.Map(c.entries, func(e *Entry, _ int) string { return e.Name })
}

// Surfaces returns the planar entries in insertion order.
func (c *Catalog) Surfaces() []*Entry {
	return lo.Filter(c.entries, func(e *Entry, _ int) bool {
		_, ok := e.Shape.(geometry.Surface)
		return ok
	})
}

// Solids returns the spatial entries in insertion order.
func (c *Catalog) Solids() []*Entry {
	return lo.Filter(c.entries, func(e *Entry, _ int) bool {
		_, ok := e.Shape.(geometry.Solid)
		return ok
	})
}
