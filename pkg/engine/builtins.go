package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/geometry"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpShape wraps a geometry.Shape so it can be passed between builtins.
type sexpShape struct {
	shape geometry.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	if str, ok := s.shape.(fmt.Stringer); ok {
		return str.String()
	}
	return s.shape.Kind().String()
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpEdge wraps a geometry.Edge.
type sexpEdge struct {
	edge geometry.Edge
}

func (e *sexpEdge) SexpString(ps *zygo.PrintState) string { return e.edge.String() }
func (e *sexpEdge) Type() *zygo.RegisteredType            { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// dimensions reads the named dimensions of a constructor call, either all
// positionally, (cylinder 1 2), or all by keyword, (cylinder :radius 1 :height 2).
func dimensions(fn string, args []zygo.Sexp, names ...string) ([]float64, error) {
	pa := parseArgs(args)
	if len(pa.positional) > 0 && len(pa.kw) > 0 {
		return nil, fmt.Errorf("%s: cannot mix positional and keyword arguments", fn)
	}

	out := make([]float64, len(names))
	if len(pa.kw) == 0 {
		if len(pa.positional) != len(names) {
			return nil, fmt.Errorf("%s requires %d arguments (%s), got %d",
				fn, len(names), strings.Join(names, ", "), len(pa.positional))
		}
		for i, arg := range pa.positional {
			f, err := toFloat64(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", fn, names[i], err)
			}
			out[i] = f
		}
		return out, nil
	}

	for i, name := range names {
		v, ok := pa.kw[name]
		if !ok {
			return nil, fmt.Errorf("%s: missing :%s", fn, name)
		}
		f, err := toFloat64(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", fn, name, err)
		}
		out[i] = f
	}
	for name := range pa.kw {
		if !slices.Contains(names, name) {
			return nil, fmt.Errorf("%s: unknown keyword :%s", fn, name)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_area) and plain strings ("area").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, err := toString(s)
	if err != nil {
		return "", fmt.Errorf("expected keyword or string: %w", err)
	}
	return strings.TrimPrefix(str, kwPrefix), nil
}

// toShape extracts a geometry.Shape from a sexpShape.
func toShape(s zygo.Sexp) (geometry.Shape, error) {
	if v, ok := s.(*sexpShape); ok {
		return v.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

func toSurface(s zygo.Sexp) (geometry.Surface, error) {
	shape, err := toShape(s)
	if err != nil {
		return nil, err
	}
	surface, ok := shape.(geometry.Surface)
	if !ok {
		return nil, fmt.Errorf("%s is not a surface", shape.Kind())
	}
	return surface, nil
}

func toSolid(s zygo.Sexp) (geometry.Solid, error) {
	shape, err := toShape(s)
	if err != nil {
		return nil, err
	}
	solid, ok := shape.(geometry.Solid)
	if !ok {
		return nil, fmt.Errorf("%s is not a solid", shape.Kind())
	}
	return solid, nil
}

func toEdge(s zygo.Sexp) (geometry.Edge, error) {
	if v, ok := s.(*sexpEdge); ok {
		return v.edge, nil
	}
	return geometry.Edge{}, fmt.Errorf("expected edge, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Measures
// ---------------------------------------------------------------------------

// measures maps a measure keyword to its extractor. Each builtin of the same
// name and the sum-by fold share these.
var measures = map[string]func(zygo.Sexp) (float64, error){
	"area": func(s zygo.Sexp) (float64, error) {
		surface, err := toSurface(s)
		if err != nil {
			return 0, err
		}
		return surface.Area(), nil
	},
	"perimeter": func(s zygo.Sexp) (float64, error) {
		surface, err := toSurface(s)
		if err != nil {
			return 0, err
		}
		return surface.Perimeter(), nil
	},
	"volume": func(s zygo.Sexp) (float64, error) {
		solid, err := toSolid(s)
		if err != nil {
			return 0, err
		}
		return solid.Volume(), nil
	},
	"outer-area": func(s zygo.Sexp) (float64, error) {
		solid, err := toSolid(s)
		if err != nil {
			return 0, err
		}
		return solid.OuterArea(), nil
	},
	"length": func(s zygo.Sexp) (float64, error) {
		e, err := toEdge(s)
		if err != nil {
			return 0, err
		}
		return e.Length(), nil
	},
}

// compareSexp applies the truncating comparator to two edges, two surfaces
// or two solids.
func compareSexp(a, b zygo.Sexp) (int, error) {
	if ea, err := toEdge(a); err == nil {
		eb, err := toEdge(b)
		if err != nil {
			return 0, err
		}
		return ea.Compare(eb), nil
	}
	sa, err := toShape(a)
	if err != nil {
		return 0, err
	}
	sb, err := toShape(b)
	if err != nil {
		return 0, err
	}
	if sa.Kind().Planar() != sb.Kind().Planar() {
		return 0, fmt.Errorf("cannot compare %s with %s", sa.Kind(), sb.Kind())
	}
	if surface, ok := sa.(geometry.Surface); ok {
		return geometry.CompareSurfaces(surface, sb.(geometry.Surface)), nil
	}
	return geometry.CompareSolids(sa.(geometry.Solid), sb.(geometry.Solid)), nil
}

// sumBy folds a measure over a list of shapes or edges.
func sumBy(items []zygo.Sexp, measure string) (float64, error) {
	project, ok := measures[measure]
	if !ok {
		return 0, fmt.Errorf("unknown measure %q", measure)
	}
	type acc struct {
		sum float64
		err error
	}
	res := geometry.Fold(slices.Values(items), acc{}, func(a acc, item zygo.Sexp) acc {
		if a.err != nil {
			return a
		}
		v, err := project(item)
		if err != nil {
			return acc{err: err}
		}
		return acc{sum: a.sum + v}
	})
	return res.sum, res.err
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// constructor describes one shape-building builtin.
type constructor struct {
	name  string
	dims  []string
	build func(d []float64) geometry.Shape
}

var constructors = []constructor{
	{"rectangle", []string{"base", "height"}, func(d []float64) geometry.Shape {
		return geometry.NewRectangle(d[0], d[1])
	}},
	{"square", []string{"side"}, func(d []float64) geometry.Shape {
		return geometry.NewSquare(d[0])
	}},
	{"sphere", []string{"radius"}, func(d []float64) geometry.Shape {
		return geometry.NewSphere(d[0])
	}},
	{"cylinder", []string{"radius", "height"}, func(d []float64) geometry.Shape {
		return geometry.NewCylinder(d[0], d[1])
	}},
	{"parallelepiped", []string{"width", "height", "depth"}, func(d []float64) geometry.Shape {
		return geometry.NewParallelepiped(d[0], d[1], d[2])
	}},
	{"cube", []string{"side"}, func(d []float64) geometry.Shape {
		return geometry.NewCube(d[0])
	}},
}

// registerBuiltins installs all shape DSL builtins into a zygomys environment.
// The builtins register named shapes in the provided catalog.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals and
// kebab-case names such as outer-area reach zygomys as outer_area.
func registerBuiltins(env *zygo.Zlisp, c *catalog.Catalog) {

	// (rectangle 2 3), (cube :side 3), ...
	for _, ctor := range constructors {
		env.AddFunction(ctor.name, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			d, err := dimensions(ctor.name, args, ctor.dims...)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpShape{shape: ctor.build(d)}, nil
		})
	}

	// (edge 4)
	env.AddFunction("edge", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		d, err := dimensions("edge", args, "length")
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpEdge{edge: geometry.NewEdge(d[0])}, nil
	})

	// (area s), (perimeter s), (volume s), (outer-area s), (length e)
	for measure, project := range measures {
		fn := strings.ReplaceAll(measure, "-", "_")
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", measure, len(args))
			}
			v, err := project(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", measure, err)
			}
			return &zygo.SexpFloat{Val: v}, nil
		})
	}

	// (defshape "name" (cube 3))
	env.AddFunction("defshape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defshape requires a name and a shape expression")
		}
		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
		}
		shape, err := toShape(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		if _, err := c.Add(shapeName, shape); err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		return args[1], nil
	})

	// (shape "name")
	env.AddFunction("shape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
		}
		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shape: name: %w", err)
		}
		e := c.Lookup(shapeName)
		if e == nil {
			return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", shapeName)
		}
		return &sexpShape{shape: e.Shape}, nil
	})

	// (compare a b)
	env.AddFunction("compare", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("compare requires exactly 2 arguments, got %d", len(args))
		}
		n, err := compareSexp(args[0], args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("compare: %w", err)
		}
		return &zygo.SexpInt{Val: int64(n)}, nil
	})

	// (edges (rectangle 2 3))
	env.AddFunction("edges", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("edges requires exactly 1 argument, got %d", len(args))
		}
		shape, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("edges: %w", err)
		}
		poly, ok := shape.(geometry.Polygon)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("edges: %s is not a polygon", shape.Kind())
		}
		var items []zygo.Sexp
		for e := range poly.Edges() {
			items = append(items, &sexpEdge{edge: e})
		}
		return zygo.MakeList(items), nil
	})

	// (faces (cube 3))
	env.AddFunction("faces", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("faces requires exactly 1 argument, got %d", len(args))
		}
		shape, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("faces: %w", err)
		}
		poly, ok := shape.(geometry.Polyhedron[geometry.Rectangle])
		if !ok {
			return zygo.SexpNull, fmt.Errorf("faces: %s is not a polyhedron", shape.Kind())
		}
		var items []zygo.Sexp
		for f := range poly.Faces() {
			items = append(items, &sexpShape{shape: f})
		}
		return zygo.MakeList(items), nil
	})

	// (sum-by (list a b c) :area)
	env.AddFunction("sum_by", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("sum-by requires a list and a measure keyword")
		}
		items, err := sexpListToSlice(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sum-by: %w", err)
		}
		measure, err := toKeywordString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sum-by: measure: %w", err)
		}
		total, err := sumBy(items, measure)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sum-by: %w", err)
		}
		return &zygo.SexpFloat{Val: total}, nil
	})
}
