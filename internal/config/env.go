// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the U128CALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped by value type (numeric, duration, string, bool).
var envOverrides = []envOverride{
	// Numeric overrides
	{"RANDOM", []string{"random"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.RandomCases = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"SHIFT", []string{"shift"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Shift = uint(parsed)
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"A", []string{"a"}, func(c *AppConfig, v string) {
		c.OperandA = v
	}},
	{"B", []string{"b"}, func(c *AppConfig, v string) {
		c.OperandB = v
	}},
	{"OP", []string{"op"}, func(c *AppConfig, v string) {
		c.Op = v
	}},
	{"STRATEGY", []string{"strategy"}, func(c *AppConfig, v string) {
		c.Strategy = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.Serve = v
	}},

	// Boolean overrides
	{"VERIFY", []string{"verify"}, func(c *AppConfig, v string) {
		c.Verify = parseBoolEnv(v, c.Verify)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"REPL", []string{"repl"}, func(c *AppConfig, v string) {
		c.REPL = parseBoolEnv(v, c.REPL)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with U128CALC_):
//   - A, B, OP, SHIFT, STRATEGY, RANDOM, SEED, WORKERS, TIMEOUT,
//     VERIFY, VERBOSE, QUIET, NO_COLOR, OUTPUT, SERVE, REPL, TUI
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
