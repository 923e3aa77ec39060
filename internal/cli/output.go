// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/u128calc/internal/format"
	"github.com/agbru/u128calc/internal/ui"
	"github.com/agbru/u128calc/internal/uint128"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose also shows the grouped decimal rendering.
	Verbose bool
}

// WriteResultToFile writes an operation result to a file.
//
// Parameters:
//   - result: The computed 128-bit value.
//   - op: The operation name.
//   - duration: The computation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result uint128.Uint128, op string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# 128-bit Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Bits: %d\n", result.AsBigInt().BitLen())
	fmt.Fprintf(file, "\n")

	// Write result in both renderings
	fmt.Fprintf(file, "hex = %s\n", result.Hex())
	fmt.Fprintf(file, "dec = %d\n", result)

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line hexadecimal result suitable for scripting.
//
// Parameters:
//   - result: The computed 128-bit value.
//
// Returns:
//   - string: The formatted result string.
func FormatQuietResult(result uint128.Uint128) string {
	return result.Hex()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - result: The computed 128-bit value.
func DisplayQuietResult(out io.Writer, result uint128.Uint128) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResult displays a computed value with its duration, in hexadecimal
// and decimal renderings.
//
// Parameters:
//   - result: The computed 128-bit value.
//   - op: The operation name.
//   - duration: The computation duration.
//   - verbose: When true, also shows the decimal value with digit grouping.
//   - out: The output writer.
func DisplayResult(result uint128.Uint128, op string, duration time.Duration, verbose bool, out io.Writer) {
	fmt.Fprintf(out, "\n%sResult (%s):%s\n", ui.ColorBold(), op, ui.ColorReset())
	fmt.Fprintf(out, "  Time: %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "  Hex:  %s%s%s\n", ui.ColorGreen(), result.Hex(), ui.ColorReset())
	fmt.Fprintf(out, "  Dec:  %s%d%s\n", ui.ColorGreen(), result, ui.ColorReset())
	if verbose {
		fmt.Fprintf(out, "  Grouped: %s%s%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", result)), ui.ColorReset())
	}
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - result: The computed 128-bit value.
//   - op: The operation name.
//   - duration: The computation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, result uint128.Uint128, op string, duration time.Duration, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		DisplayResult(result, op, duration, config.Verbose, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(result, op, duration, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
