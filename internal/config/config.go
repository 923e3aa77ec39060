// Package config handles command-line flag parsing, environment variable
// overrides, and validation of the application configuration.
//
// Configuration priority (highest first):
//  1. CLI flags (--verify, --random, --seed, ...)
//  2. Environment variables (U128CALC_VERIFY, U128CALC_RANDOM, ...)
//  3. Built-in defaults
package config

import (
	"errors"
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/u128calc/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "U128CALC_"

// Default values for the application configuration.
const (
	// DefaultRandomCases is the number of pseudo-random operand pairs
	// exercised by a verification run.
	DefaultRandomCases = 10000
	// DefaultSeed seeds the verification corpus generator. A fixed seed
	// keeps runs reproducible across machines.
	DefaultSeed = 1
	// DefaultTimeout bounds a single verification or calculation run.
	DefaultTimeout = 5 * time.Minute
	// DefaultStrategy selects the multiplication strategy. "auto" picks
	// the hardware-backed multiplier.
	DefaultStrategy = "auto"
)

// AppConfig holds the complete application configuration assembled from
// flags, environment variables, and defaults.
type AppConfig struct {
	// OperandA and OperandB are the calculator operands, as decimal or
	// 0x-prefixed hexadecimal strings.
	OperandA string
	OperandB string
	// Op is the operation to perform: "mul", "add", "shl", or "shr".
	Op string
	// Shift is the shift amount for "shl" and "shr".
	Shift uint
	// Strategy selects the 64x64 multiplier: "auto", "hardware", or
	// "portable".
	Strategy string

	// Verify enables the multiplier cross-verification run.
	Verify bool
	// RandomCases is the number of pseudo-random pairs in the
	// verification corpus.
	RandomCases int
	// Seed seeds the verification corpus generator.
	Seed int64
	// Workers is the number of concurrent verification shards.
	// Zero selects an adaptive value based on the host CPU count.
	Workers int

	// Timeout bounds the whole run.
	Timeout time.Duration

	// Quiet suppresses progress output; Verbose enables debug logging.
	Quiet   bool
	Verbose bool
	// NoColor disables ANSI color output.
	NoColor bool
	// OutputFile, when set, receives the result in addition to stdout.
	OutputFile string

	// REPL starts the interactive calculator loop.
	REPL bool
	// TUI starts the full-screen verification dashboard.
	TUI bool
	// Serve, when non-empty, starts the HTTP API on this address.
	Serve string
	// Completion requests a shell completion script ("bash" or "zsh").
	Completion string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The destination for flag parse errors and usage text.
//
// Returns:
//   - AppConfig: The assembled configuration.
//   - error: A ConfigError if parsing or validation fails.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.OperandA, "a", "", "first operand (decimal or 0x-prefixed hex)")
	fs.StringVar(&cfg.OperandB, "b", "", "second operand (decimal or 0x-prefixed hex)")
	fs.StringVar(&cfg.Op, "op", "mul", "operation: mul, add, shl, shr")
	fs.UintVar(&cfg.Shift, "shift", 0, "shift amount for shl/shr (0-127)")
	fs.StringVar(&cfg.Strategy, "strategy", DefaultStrategy, "multiplier strategy: auto, hardware, portable")

	fs.BoolVar(&cfg.Verify, "verify", false, "cross-verify the portable multiplier against the hardware one")
	fs.IntVar(&cfg.RandomCases, "random", DefaultRandomCases, "number of pseudo-random verification cases")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSeed, "seed for the verification corpus generator")
	fs.IntVar(&cfg.Workers, "workers", 0, "number of concurrent verification shards (0 = auto)")

	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")

	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress progress output")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress progress output (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable color output")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to this file as well as stdout")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result to this file (shorthand)")

	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive calculator")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the full-screen verification dashboard")
	fs.StringVar(&cfg.Serve, "serve", "", "start the HTTP API on this address (e.g. :8080)")
	fs.StringVar(&cfg.Completion, "completion", "", "print a shell completion script (bash, zsh, fish, powershell)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	switch c.Op {
	case "mul", "add", "shl", "shr":
	default:
		return apperrors.NewConfigError("unknown operation %q (want mul, add, shl, or shr)", c.Op)
	}

	switch c.Strategy {
	case "auto", "hardware", "portable":
	default:
		return apperrors.NewConfigError("unknown strategy %q (want auto, hardware, or portable)", c.Strategy)
	}

	if c.Shift > 127 {
		return apperrors.NewConfigError("shift amount %d out of range (0-127)", c.Shift)
	}

	if c.RandomCases < 0 {
		return apperrors.NewConfigError("random case count must be non-negative, got %d", c.RandomCases)
	}

	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count must be non-negative, got %d", c.Workers)
	}

	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", c.Timeout)
	}

	switch c.Completion {
	case "", "bash", "zsh", "fish", "powershell", "ps":
	default:
		return apperrors.NewConfigError("unsupported completion shell %q (want bash, zsh, fish, or powershell)", c.Completion)
	}

	return nil
}
