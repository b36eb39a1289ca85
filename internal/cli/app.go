package cli

import (
	"log/slog"
	"time"

	"github.com/chazu/figura/internal/config"
	"github.com/chazu/figura/pkg/catalog"
	"github.com/chazu/figura/pkg/engine"
	"github.com/chazu/figura/pkg/kernel"
	"github.com/chazu/figura/pkg/kernel/sdfx"
	"github.com/chazu/figura/pkg/realize"
	"github.com/samber/lo"
)

// App bundles the script engine, the optional geometry kernel and the logger
// behind a single Evaluate call.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	logger *slog.Logger
	sorted bool
}

// Result is the JSON-serialisable outcome of one evaluation.
type Result struct {
	Measurements []catalog.Measurement `json:"measurements"`
	Envelopes    []kernel.Envelope     `json:"envelopes,omitempty"`
	Errors       []engine.EvalError    `json:"errors"`
}

// OK reports whether the evaluation produced no errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// NewApp creates an App from the resolved configuration. A "none" kernel
// skips realisation entirely.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		engine: engine.NewEngine(engine.WithTimeout(cfg.Timeout), engine.WithLogger(logger)),
		logger: logger,
		sorted: cfg.SortBy == "measure",
	}
	if cfg.Kernel == "sdfx" {
		a.kernel = sdfx.New()
	}
	return a
}

// Evaluate runs source through the engine, measures the resulting catalog
// and, when a kernel is configured, realises every shape's envelope. Shapes
// the kernel rejects are still measured but have no envelope.
func (a *App) Evaluate(source string) Result {
	result := Result{
		Measurements: []catalog.Measurement{},
		Errors:       []engine.EvalError{},
	}

	// Step 1: Evaluate the script into a shape catalog.
	start := time.Now()
	c, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.logger.Error("evaluate failed", "error", err)
		result.Errors = append(result.Errors, engine.EvalError{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		result.Errors = append(result.Errors, evalErrs...)
		return result
	}
	a.logger.Debug("evaluated script", "shapes", c.Len(), "elapsed", time.Since(start))

	// Step 2: Measure, optionally in comparator order.
	entries := c.Entries()
	if a.sorted {
		entries = c.Sorted()
	}
	result.Measurements = lo.Map(entries, func(e *catalog.Entry, _ int) catalog.Measurement {
		return catalog.Measure(e)
	})

	// Step 3: Realise envelopes in the kernel.
	if a.kernel == nil {
		return result
	}
	envelopes, err := realize.Realize(c, a.kernel)
	if err != nil {
		// Measures stay valid for shapes the kernel rejects; they just
		// get no envelope.
		a.logger.Warn("some shapes have no envelope", "error", err)
	}
	if a.sorted {
		order := lo.Map(entries, func(e *catalog.Entry, _ int) string { return e.Name })
		byName := lo.KeyBy(envelopes, func(env kernel.Envelope) string { return env.Name })
		envelopes = lo.FilterMap(order, func(name string, _ int) (kernel.Envelope, bool) {
			env, ok := byName[name]
			return env, ok
		})
	}
	result.Envelopes = envelopes
	return result
}
