package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// errEvalFailed is returned after the evaluation errors have been printed.
var errEvalFailed = errors.New("evaluation failed")

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file|->",
		Short: "Evaluate a shape script and measure its shapes",
		Long: `Evaluate a shape script and print a measurement row for every shape
declared with defshape. Use "-" to read the script from stdin.

With the sdfx kernel each shape is also realised and its bounding envelope
is reported.

Example script:

  (defshape "lid" (rectangle 2 3))
  (defshape "ball" (sphere :radius 1.5))
  (defshape "box" (cube (perimeter (shape "lid"))))`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())
			logger.Debug("evaluating script", "source", args[0], "bytes", len(source))

			result := NewApp(cfg, logger).Evaluate(source)
			if err := renderResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, cfg.Output); err != nil {
				return err
			}
			if !result.OK() {
				return errEvalFailed
			}
			return nil
		},
	}
}

func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(b), nil
}
