package cli

import (
	"fmt"
	"io"

	"github.com/chazu/figura/pkg/geometry"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// Comparison is the outcome of comparing two shapes of the same family.
type Comparison struct {
	A       string  `json:"a"`
	B       string  `json:"b"`
	Measure string  `json:"measure"`
	AValue  float64 `json:"a_value"`
	BValue  float64 `json:"b_value"`
	Result  int     `json:"result"`
}

// Relation describes Result in words. Differences below one unit are equal
// because the comparator truncates.
func (c Comparison) Relation() string {
	switch {
	case c.Result < 0:
		return "smaller than"
	case c.Result > 0:
		return "larger than"
	}
	return "equal to"
}

// compareShapes compares two surfaces by area or two solids by volume.
func compareShapes(a, b geometry.Shape) (Comparison, error) {
	cmp := Comparison{A: describeShape(a), B: describeShape(b)}
	if a.Kind().Planar() != b.Kind().Planar() {
		return cmp, fmt.Errorf("cannot compare %s with %s: one is a surface, the other a solid", cmp.A, cmp.B)
	}

	if sa, ok := a.(geometry.Surface); ok {
		sb := b.(geometry.Surface)
		cmp.Measure = "area"
		cmp.AValue, cmp.BValue = sa.Area(), sb.Area()
		cmp.Result = geometry.CompareSurfaces(sa, sb)
		return cmp, nil
	}
	sa, sb := a.(geometry.Solid), b.(geometry.Solid)
	cmp.Measure = "volume"
	cmp.AValue, cmp.BValue = sa.Volume(), sb.Volume()
	cmp.Result = geometry.CompareSolids(sa, sb)
	return cmp, nil
}

func renderComparison(w io.Writer, c Comparison) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Shape", c.Measure})
	t.AppendRow(table.Row{c.A, formatFloat(c.AValue)})
	t.AppendRow(table.Row{c.B, formatFloat(c.BValue)})
	t.Render()
	_, _ = fmt.Fprintf(w, "%s is %s %s (%d)\n", c.A, c.Relation(), c.B, c.Result)
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two shapes",
		Long: `Compare two surfaces by area or two solids by volume.

Shapes use the kind:dims notation, with dimensions separated by "x" or ",".
The result is the measure difference truncated toward zero, so shapes that
differ by less than one unit compare equal.

Examples:
  figura compare rectangle:2x3 square:2
  figura compare sphere:2 cube:3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseShapeSpec(args[0])
			if err != nil {
				return err
			}
			b, err := parseShapeSpec(args[1])
			if err != nil {
				return err
			}
			cmp, err := compareShapes(a, b)
			if err != nil {
				return err
			}

			if GetConfig(cmd.Context()).Output == "json" {
				return renderJSON(cmd.OutOrStdout(), cmp)
			}
			renderComparison(cmd.OutOrStdout(), cmp)
			return nil
		},
	}
}
