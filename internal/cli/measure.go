package cli

import (
	"fmt"
	"strings"

	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/engine"
	"github.com/chazu/figura/pkg/kernel"
	"github.com/chazu/figura/pkg/kernel/sdfx"
	"github.com/chazu/figura/pkg/realize"
	"github.com/spf13/cobra"
)

// NewMeasureCommand creates the measure command.
func NewMeasureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <kind> <dims...>",
		Short: "Measure a single shape",
		Long: fmt.Sprintf(`Measure one shape given on the command line.

Kinds: %s

Examples:
  figura measure rectangle 2 3
  figura measure cylinder 1 4
  figura measure cube 3 -o json`, strings.Join(shapeKinds, ", ")),
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: shapeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := buildShape(args[0], args[1:])
			if err != nil {
				return err
			}

			cfg := GetConfig(cmd.Context())
			c := catalog.New()
			e, err := c.Add(describeShape(shape), shape)
			if err != nil {
				return err
			}

			result := Result{
				Measurements: []catalog.Measurement{catalog.Measure(e)},
				Errors:       []engine.EvalError{},
			}
			if cfg.Kernel == "sdfx" {
				solid, err := realize.Solid(sdfx.New(), shape)
				if err != nil {
					// Measures stay valid for shapes the kernel rejects.
					GetLogger(cmd.Context()).Warn("no envelope", "shape", e.Name, "error", err)
				} else {
					result.Envelopes = []kernel.Envelope{kernel.NewEnvelope(e.Name, solid)}
				}
			}
			return renderResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, cfg.Output)
		},
	}
}
