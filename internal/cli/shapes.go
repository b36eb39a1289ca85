package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/figura/pkg/geometry"
	"github.com/samber/lo"
)

// shapeBuilder builds a shape from exactly len(dims) dimensions.
type shapeBuilder struct {
	dims  []string
	build func(d []float64) geometry.Shape
}

var shapeBuilders = map[string]shapeBuilder{
	"rectangle": {[]string{"base", "height"}, func(d []float64) geometry.Shape {
		return geometry.NewRectangle(d[0], d[1])
	}},
	"square": {[]string{"side"}, func(d []float64) geometry.Shape {
		return geometry.NewSquare(d[0])
	}},
	"sphere": {[]string{"radius"}, func(d []float64) geometry.Shape {
		return geometry.NewSphere(d[0])
	}},
	"cylinder": {[]string{"radius", "height"}, func(d []float64) geometry.Shape {
		return geometry.NewCylinder(d[0], d[1])
	}},
	"parallelepiped": {[]string{"width", "height", "depth"}, func(d []float64) geometry.Shape {
		return geometry.NewParallelepiped(d[0], d[1], d[2])
	}},
	"cube": {[]string{"side"}, func(d []float64) geometry.Shape {
		return geometry.NewCube(d[0])
	}},
}

// shapeKinds lists the names accepted by buildShape, for help and completion.
var shapeKinds = []string{"rectangle", "square", "sphere", "cylinder", "parallelepiped", "cube"}

// buildShape constructs a shape of the named kind from textual dimensions.
func buildShape(kind string, args []string) (geometry.Shape, error) {
	b, ok := shapeBuilders[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q (want one of %s)", kind, strings.Join(shapeKinds, ", "))
	}
	if len(args) != len(b.dims) {
		return nil, fmt.Errorf("%s requires %d dimensions (%s), got %d",
			kind, len(b.dims), strings.Join(b.dims, ", "), len(args))
	}
	d := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: invalid number %q", kind, b.dims[i], arg)
		}
		d[i] = f
	}
	return b.build(d), nil
}

// parseShapeSpec parses the compact "kind:dims" notation, with dimensions
// separated by "x" or ",": sphere:2, rectangle:2x3, cylinder:1,4.
func parseShapeSpec(spec string) (geometry.Shape, error) {
	kind, dims, ok := strings.Cut(spec, ":")
	if !ok || dims == "" {
		return nil, fmt.Errorf("invalid shape %q (want kind:dims, e.g. cube:3 or rectangle:2x3)", spec)
	}
	parts := strings.FieldsFunc(dims, func(r rune) bool { return r == 'x' || r == ',' })
	parts = lo.Filter(parts, func(p string, _ int) bool { return strings.TrimSpace(p) != "" })
	return buildShape(kind, parts)
}

// describeShape returns the compact notation of s, e.g. rectangle(2x3).
func describeShape(s geometry.Shape) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return s.Kind().String()
}
