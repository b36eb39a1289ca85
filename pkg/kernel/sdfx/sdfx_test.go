package sdfx

import (
	"math"
	"testing"

	"github.com/chazu/figura/pkg/kernel"
)

const tol = 1e-6

func assertBox(t *testing.T, s kernel.Solid, expectMin, expectMax [3]float64) {
	t.Helper()
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestBox(t *testing.T) {
	k := New()
	box, err := k.Box(100, 50, 25)
	if err != nil {
		t.Fatalf("Box failed: %v", err)
	}
	// The box is anchored at its minimum corner.
	assertBox(t, box, [3]float64{0, 0, 0}, [3]float64{100, 50, 25})
}

func TestRect(t *testing.T) {
	k := New()
	r, err := k.Rect(4, 3)
	if err != nil {
		t.Fatalf("Rect failed: %v", err)
	}
	assertBox(t, r, [3]float64{0, 0, 0}, [3]float64{4, 3, 0})
}

func TestSphere(t *testing.T) {
	k := New()
	s, err := k.Sphere(2)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	assertBox(t, s, [3]float64{-2, -2, -2}, [3]float64{2, 2, 2})
}

func TestCylinder(t *testing.T) {
	k := New()
	cyl, err := k.Cylinder(50, 10)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	assertBox(t, cyl, [3]float64{-10, -10, -25}, [3]float64{10, 10, 25})
}

func TestRejectedDimensions(t *testing.T) {
	k := New()
	tests := []struct {
		name string
		make func() (kernel.Solid, error)
	}{
		{"negative rect", func() (kernel.Solid, error) { return k.Rect(-1, 2) }},
		{"negative box", func() (kernel.Solid, error) { return k.Box(1, -2, 3) }},
		{"zero sphere", func() (kernel.Solid, error) { return k.Sphere(0) }},
		{"negative sphere", func() (kernel.Solid, error) { return k.Sphere(-1) }},
		{"zero cylinder radius", func() (kernel.Solid, error) { return k.Cylinder(5, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.make(); err == nil {
				t.Errorf("%s: expected error, got nil", tt.name)
			}
		})
	}
}
