package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/u128calc/internal/config"
	"github.com/agbru/u128calc/internal/ui"
	"github.com/agbru/u128calc/internal/uint128"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operation, operands, multiplier strategy, timeout, and
// environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Operation %s%s%s with strategy %s%s%s and a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Op, ui.ColorReset(),
		ui.ColorCyan(), cfg.Strategy, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintVerificationConfig displays the configuration of a verification run.
//
// Parameters:
//   - cfg: The application configuration.
//   - workers: The resolved number of concurrent shards.
//   - out: The writer for standard output.
func PrintVerificationConfig(cfg config.AppConfig, workers int, out io.Writer) {
	fmt.Fprintf(out, "--- Verification Configuration ---\n")
	fmt.Fprintf(out, "Checking %s%d%s random cases (seed %s%d%s) plus boundary pairs across %s%d%s workers.\n",
		ui.ColorMagenta(), cfg.RandomCases, ui.ColorReset(),
		ui.ColorCyan(), cfg.Seed, ui.ColorReset(),
		ui.ColorCyan(), workers, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Verification ---\n")
}

// ParseOperand converts an operand string into a 128-bit value. Decimal and
// 0x-prefixed hexadecimal forms are accepted.
//
// Parameters:
//   - name: The flag name, used in error messages.
//   - s: The operand text.
//
// Returns:
//   - uint128.Uint128: The parsed value.
//   - error: A descriptive error when s is empty or not a valid operand.
func ParseOperand(name, s string) (uint128.Uint128, error) {
	if s == "" {
		return uint128.Zero, fmt.Errorf("missing operand -%s", name)
	}
	v, err := uint128.FromString(s)
	if err != nil {
		return uint128.Zero, fmt.Errorf("invalid operand -%s: %w", name, err)
	}
	return v, nil
}
