// Package config loads Oliver's run-time tuning knobs from a YAML document
// via goccy/go-yaml. The teacher pulls that library in only indirectly
// (through go-snaps' ciinfo dependency); here it is exercised directly,
// the way a CLI tool's own settings file normally would be.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/maxjmartin/Olly/internal/eval"
	"github.com/maxjmartin/Olly/internal/value"
)

// Config is Oliver's tunable runtime configuration (spec §4.3's stack
// limit, spec §6's decimal scale/rounding mode).
type Config struct {
	StackLimit   int    `yaml:"stack_limit"`
	DecimalScale int    `yaml:"decimal_scale"`
	RoundingMode string `yaml:"rounding_mode"`
}

// Default returns the configuration Oliver runs with when no file is given.
func Default() Config {
	return Config{
		StackLimit:   eval.DefaultStackLimit,
		DecimalScale: 2,
		RoundingMode: "half_even",
	}
}

// Load reads a YAML config file at path, filling any field the document
// omits from Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// roundingModes maps the eight names spec §6 requires to their
// value.RoundingMode constant.
var roundingModes = map[string]value.RoundingMode{
	"half_even":      value.HalfEven,
	"half_up":        value.HalfUp,
	"half_down":      value.HalfDown,
	"half_odd":       value.HalfOdd,
	"ceil":           value.Ceil,
	"floor":          value.Floor,
	"toward_zero":    value.TowardZero,
	"away_from_zero": value.AwayFromZero,
}

// Rounding resolves the configured rounding mode name, defaulting to
// HalfEven for an unrecognized or empty value.
func (c Config) Rounding() value.RoundingMode {
	if m, ok := roundingModes[c.RoundingMode]; ok {
		return m
	}
	return value.HalfEven
}

// Options builds the eval.Option set this configuration implies.
func (c Config) Options(out func(string)) []eval.Option {
	opts := []eval.Option{
		eval.WithStackLimit(c.StackLimit),
		eval.WithNumberFormat(c.DecimalScale, c.Rounding()),
	}
	if out != nil {
		opts = append(opts, eval.WithOutput(out))
	}
	return opts
}
