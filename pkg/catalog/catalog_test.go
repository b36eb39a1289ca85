package catalog

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/chazu/figura/pkg/geometry"
)

func TestNewCatalog(t *testing.T) {
	c := New()
	if c.Len() != 0 {
		t.Errorf("empty catalog should have 0 entries, got %d", c.Len())
	}
	if c.Lookup("anything") != nil {
		t.Error("Lookup on empty catalog should return nil")
	}
}

func TestAddAndLookup(t *testing.T) {
	c := New()
	e, err := c.Add("lid", geometry.NewRectangle(2, 3))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if e.Index != 0 {
		t.Errorf("Index = %d, want 0", e.Index)
	}

	found := c.Lookup("lid")
	if found == nil {
		t.Fatal("Lookup('lid') returned nil")
	}
	if found.Shape.Kind() != geometry.KindRectangle {
		t.Errorf("kind = %s, want rectangle", found.Shape.Kind())
	}
	if must := c.MustLookup("lid"); must != found {
		t.Error("MustLookup returned a different entry")
	}
}

func TestAddDuplicate(t *testing.T) {
	c := New()
	if _, err := c.Add("a", geometry.NewCube(1)); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	_, err := c.Add("a", geometry.NewCube(2))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("second Add() error = %v, want ErrDuplicateName", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", c.Len())
	}
}

func TestAddNilShape(t *testing.T) {
	c := New()
	if _, err := c.Add("x", nil); err == nil {
		t.Fatal("expected error for nil shape")
	}
}

func TestAddAnonymous(t *testing.T) {
	c := New()
	a, err := c.Add("", geometry.NewSphere(1))
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Add("", geometry.NewSphere(2))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(a.Name, "_anon_") || a.Name == b.Name {
		t.Errorf("anonymous names = %q, %q; want distinct _anon_ names", a.Name, b.Name)
	}
}

func TestAnonymousNamesArePerCatalog(t *testing.T) {
	for i := 0; i < 2; i++ {
		c := New()
		a := mustAdd(t, c, "", geometry.NewSphere(1))
		b := mustAdd(t, c, "", geometry.NewCube(1))
		if a.Name != "_anon_1" || b.Name != "_anon_2" {
			t.Errorf("catalog %d: anonymous names = %q, %q; want _anon_1, _anon_2", i, a.Name, b.Name)
		}
	}
}

func TestAnonymousNameSkipsTakenNames(t *testing.T) {
	c := New()
	mustAdd(t, c, "_anon_1", geometry.NewSquare(1))
	e := mustAdd(t, c, "", geometry.NewSquare(2))
	if e.Name != "_anon_2" {
		t.Errorf("anonymous name = %q, want _anon_2", e.Name)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup should panic for missing name")
		}
	}()
	New().MustLookup("missing")
}

func TestSurfacesAndSolids(t *testing.T) {
	c := New()
	mustAdd(t, c, "r", geometry.NewRectangle(1, 2))
	mustAdd(t, c, "s", geometry.NewSphere(1))
	mustAdd(t, c, "q", geometry.NewSquare(2))
	mustAdd(t, c, "b", geometry.NewCube(2))

	if got := names(c.Surfaces()); !slices.Equal(got, []string{"r", "q"}) {
		t.Errorf("Surfaces() = %v", got)
	}
	if got := names(c.Solids()); !slices.Equal(got, []string{"s", "b"}) {
		t.Errorf("Solids() = %v", got)
	}
	if got := c.Names(); !slices.Equal(got, []string{"r", "s", "q", "b"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	c := New()
	mustAdd(t, c, "a", geometry.NewCube(1))
	entries := c.Entries()
	entries[0] = nil
	if c.Lookup("a") == nil || c.Entries()[0] == nil {
		t.Error("mutating Entries() result changed the catalog")
	}
}

func mustAdd(t *testing.T, c *Catalog, name string, s geometry.Shape) *Entry {
	t.Helper()
	e, err := c.Add(name, s)
	if err != nil {
		t.Fatalf("Add(%q) error = %v", name, err)
	}
	return e
}

func names(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
