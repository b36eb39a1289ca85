// Package config loads figura's CLI configuration.
//
// Values are layered with koanf. Precedence from highest to lowest is
// explicitly set flags, FIGURA_ environment variables, the config file
// (figura.yaml or figura.yml) and finally the built-in defaults.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FIGURA_"

// Defaults.
const (
	DefaultOutput   = "text"
	DefaultLogLevel = "info"
	DefaultTimeout  = 5 * time.Second
	DefaultKernel   = "sdfx"
	DefaultSortBy   = "none"
)

// Accepted enum values.
var (
	Outputs = []string{"text", "json"}
	Kernels = []string{"sdfx", "none"}
	SortBys = []string{"none", "measure"}
)

// Config is the resolved CLI configuration.
type Config struct {
	Output   string        `koanf:"output"`
	LogLevel string        `koanf:"log_level"`
	Timeout  time.Duration `koanf:"timeout"`
	Kernel   string        `koanf:"kernel"`
	SortBy   string        `koanf:"sort_by"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Timeout:  DefaultTimeout,
		Kernel:   DefaultKernel,
		SortBy:   DefaultSortBy,
	}
}

// findConfigFile picks the config file to read.
// Priority: explicit path > figura.yaml > figura.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"figura.yaml", "figura.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration from defaults, the config file, the
// environment and flags. flags may be nil. Only flags that were explicitly
// set take part; their kebab-case names map onto snake_case keys, with
// --sort feeding sort_by.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":    DefaultOutput,
		"log_level": DefaultLogLevel,
		"timeout":   DefaultTimeout.String(),
		"kernel":    DefaultKernel,
		"sort_by":   DefaultSortBy,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: FIGURA_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if key == "sort" {
				key = "sort_by"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Kernel = strings.ToLower(cfg.Kernel)
	cfg.SortBy = strings.ToLower(cfg.SortBy)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum values and the timeout.
func (c *Config) Validate() error {
	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("invalid output %q (want %s)", c.Output, strings.Join(Outputs, "|"))
	}
	if !slices.Contains(Kernels, c.Kernel) {
		return fmt.Errorf("invalid kernel %q (want %s)", c.Kernel, strings.Join(Kernels, "|"))
	}
	if !slices.Contains(SortBys, c.SortBy) {
		return fmt.Errorf("invalid sort_by %q (want %s)", c.SortBy, strings.Join(SortBys, "|"))
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
