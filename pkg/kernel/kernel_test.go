package kernel

import "testing"

// --- Envelope helper method tests ---

func TestEnvelopeSize(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want [3]float64
	}{
		{"empty", Envelope{}, [3]float64{0, 0, 0}},
		{"unit box", Envelope{Max: [3]float64{1, 1, 1}}, [3]float64{1, 1, 1}},
		{"centred", Envelope{Min: [3]float64{-2, -2, -3}, Max: [3]float64{2, 2, 3}}, [3]float64{4, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvelopeIsPlanar(t *testing.T) {
	t.Run("planar", func(t *testing.T) {
		e := Envelope{Max: [3]float64{2, 3, 0}}
		if !e.IsPlanar() {
			t.Error("IsPlanar() = false for zero-depth envelope, want true")
		}
	})
	t.Run("spatial", func(t *testing.T) {
		e := Envelope{Max: [3]float64{2, 3, 4}}
		if e.IsPlanar() {
			t.Error("IsPlanar() = true for box envelope, want false")
		}
	})
}

// --- Compile-time interface check with a stub kernel ---

// stubSolid is a minimal Solid implementation for testing.
type stubSolid struct {
	minBB, maxBB [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable.
type stubKernel struct{}

func (k *stubKernel) Rect(x, y float64) (Solid, error) {
	return &stubSolid{maxBB: [3]float64{x, y, 0}}, nil
}

func (k *stubKernel) Box(x, y, z float64) (Solid, error) {
	return &stubSolid{maxBB: [3]float64{x, y, z}}, nil
}

func (k *stubKernel) Sphere(r float64) (Solid, error) {
	return &stubSolid{
		minBB: [3]float64{-r, -r, -r},
		maxBB: [3]float64{r, r, r},
	}, nil
}

func (k *stubKernel) Cylinder(height, radius float64) (Solid, error) {
	return &stubSolid{
		minBB: [3]float64{-radius, -radius, -height / 2},
		maxBB: [3]float64{radius, radius, height / 2},
	}, nil
}

// Compile-time checks that the stubs implement the interfaces.
var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelBoxEnvelope(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Box(10, 20, 30)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	e := NewEnvelope("crate", s)
	if e.Name != "crate" {
		t.Errorf("Name = %q, want crate", e.Name)
	}
	if e.Min != [3]float64{0, 0, 0} {
		t.Errorf("Box min = %v, want [0 0 0]", e.Min)
	}
	if e.Size() != [3]float64{10, 20, 30} {
		t.Errorf("Box size = %v, want [10 20 30]", e.Size())
	}
}

func TestStubKernelSphereEnvelope(t *testing.T) {
	var k Kernel = &stubKernel{}
	s, err := k.Sphere(2)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	if got := NewEnvelope("ball", s).Size(); got != [3]float64{4, 4, 4} {
		t.Errorf("Sphere size = %v, want [4 4 4]", got)
	}
}
