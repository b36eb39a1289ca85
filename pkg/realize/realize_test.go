package realize

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/geometry"
	"github.com/chazu/figura/pkg/kernel"
	"github.com/chazu/figura/pkg/kernel/sdfx"
)

// recordingKernel records which primitives were requested.
type recordingKernel struct {
	calls []string
	fail  bool
}

type fixedSolid struct{ min, max [3]float64 }

func (s fixedSolid) BoundingBox() (min, max [3]float64) { return s.min, s.max }

func (k *recordingKernel) Rect(x, y float64) (kernel.Solid, error) {
	k.calls = append(k.calls, "rect")
	return fixedSolid{max: [3]float64{x, y, 0}}, nil
}

func (k *recordingKernel) Box(x, y, z float64) (kernel.Solid, error) {
	k.calls = append(k.calls, "box")
	return fixedSolid{max: [3]float64{x, y, z}}, nil
}

func (k *recordingKernel) Sphere(r float64) (kernel.Solid, error) {
	k.calls = append(k.calls, "sphere")
	if k.fail {
		return nil, errors.New("boom")
	}
	return fixedSolid{min: [3]float64{-r, -r, -r}, max: [3]float64{r, r, r}}, nil
}

func (k *recordingKernel) Cylinder(h, r float64) (kernel.Solid, error) {
	k.calls = append(k.calls, "cylinder")
	return fixedSolid{min: [3]float64{-r, -r, -h / 2}, max: [3]float64{r, r, h / 2}}, nil
}

// unknownShape is a Shape no kernel primitive matches.
type unknownShape struct{}

func (unknownShape) Kind() geometry.Kind   { return "blob" }
func (unknownShape) Dimensions() []float64 { return nil }

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	add := func(name string, s geometry.Shape) {
		if _, err := c.Add(name, s); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}
	add("lid", geometry.NewRectangle(4, 3))
	add("crate", geometry.NewParallelepiped(2, 3, 4))
	add("ball", geometry.NewSphere(2))
	add("pipe", geometry.NewCylinder(1, 6))
	return c
}

func TestRealizeNilCatalog(t *testing.T) {
	envs, err := Realize(nil, &recordingKernel{})
	if err != nil || envs != nil {
		t.Errorf("Realize(nil) = %v, %v; want nil, nil", envs, err)
	}
}

func TestRealizeDispatch(t *testing.T) {
	k := &recordingKernel{}
	envs, err := Realize(sampleCatalog(t), k)
	if err != nil {
		t.Fatalf("Realize error = %v", err)
	}
	if got := strings.Join(k.calls, ","); got != "rect,box,sphere,cylinder" {
		t.Errorf("kernel calls = %s", got)
	}
	if len(envs) != 4 {
		t.Fatalf("got %d envelopes, want 4", len(envs))
	}
	if envs[0].Name != "lid" || !envs[0].IsPlanar() {
		t.Errorf("first envelope = %+v, want planar lid", envs[0])
	}
	if envs[3].Size() != [3]float64{2, 2, 6} {
		t.Errorf("pipe size = %v, want [2 2 6]", envs[3].Size())
	}
}

func TestRealizeSkipsRejectedEntries(t *testing.T) {
	envs, err := Realize(sampleCatalog(t), &recordingKernel{fail: true})
	if err == nil {
		t.Fatal("expected error from failing kernel")
	}
	if !strings.Contains(err.Error(), `"ball"`) {
		t.Errorf("error should name the shape, got: %v", err)
	}
	var got []string
	for _, e := range envs {
		got = append(got, e.Name)
	}
	if strings.Join(got, ",") != "lid,crate,pipe" {
		t.Errorf("envelopes = %v, want lid,crate,pipe", got)
	}
}

func TestRealizeUnsupportedShape(t *testing.T) {
	c := catalog.New()
	if _, err := c.Add("blob", unknownShape{}); err != nil {
		t.Fatal(err)
	}
	envs, err := Realize(c, &recordingKernel{})
	if err == nil {
		t.Fatal("expected error for unsupported shape")
	}
	if len(envs) != 0 {
		t.Errorf("got %d envelopes, want 0", len(envs))
	}
}

func TestRealizeSdfxRejectionsKeepOthers(t *testing.T) {
	c := sampleCatalog(t)
	if _, err := c.Add("dot", geometry.NewSphere(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Add("stub", geometry.NewCylinder(1, -2)); err != nil {
		t.Fatal(err)
	}
	envs, err := Realize(c, sdfx.New())
	if err == nil {
		t.Fatal("expected errors for rejected dimensions")
	}
	for _, name := range []string{`"dot"`, `"stub"`} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s, got: %v", name, err)
		}
	}
	if len(envs) != 4 {
		t.Errorf("got %d envelopes, want 4", len(envs))
	}
}

func TestRealizeWithSdfx(t *testing.T) {
	envs, err := Realize(sampleCatalog(t), sdfx.New())
	if err != nil {
		t.Fatalf("Realize error = %v", err)
	}
	want := map[string][3]float64{
		"lid":   {4, 3, 0},
		"crate": {2, 3, 4},
		"ball":  {4, 4, 4},
		"pipe":  {2, 2, 6},
	}
	for _, e := range envs {
		size := e.Size()
		for i := 0; i < 3; i++ {
			if math.Abs(size[i]-want[e.Name][i]) > 1e-6 {
				t.Errorf("%s size = %v, want %v", e.Name, size, want[e.Name])
				break
			}
		}
	}
}
