package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/engine"
	"github.com/chazu/figura/pkg/kernel"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatMeasure renders an optional measure, blank when absent.
func formatMeasure(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPoint(p [3]float64) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(p[0]), formatFloat(p[1]), formatFloat(p[2]))
}

func renderMeasurements(w io.Writer, ms []catalog.Measurement) {
	if len(ms) == 0 {
		_, _ = fmt.Fprintln(w, "(0 shapes)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Shape", "Area", "Perimeter", "Outer Area", "Volume"})
	for _, m := range ms {
		t.AppendRow(table.Row{
			m.Name,
			m.Shape,
			formatMeasure(m.Area),
			formatMeasure(m.Perimeter),
			formatMeasure(m.OuterArea),
			formatMeasure(m.Volume),
		})
	}
	t.Render()
}

func renderEnvelopes(w io.Writer, envs []kernel.Envelope) {
	if len(envs) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Min", "Max", "Size"})
	t.AppendRows(lo.Map(envs, func(e kernel.Envelope, _ int) table.Row {
		return table.Row{e.Name, formatPoint(e.Min), formatPoint(e.Max), formatPoint(e.Size())}
	}))
	t.Render()
}

func renderErrors(w io.Writer, errs []engine.EvalError) {
	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "error: %s\n", e.Error())
	}
}

// renderResult writes r to out in the given format. Errors go to errOut in
// text mode and inline in JSON mode.
func renderResult(out, errOut io.Writer, r Result, format string) error {
	if format == "json" {
		return renderJSON(out, r)
	}
	if !r.OK() {
		renderErrors(errOut, r.Errors)
		return nil
	}
	renderMeasurements(out, r.Measurements)
	if len(r.Envelopes) > 0 {
		_, _ = fmt.Fprintln(out)
		renderEnvelopes(out, r.Envelopes)
	}
	return nil
}
