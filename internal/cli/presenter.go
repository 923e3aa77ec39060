package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/u128calc/internal/errors"
	"github.com/agbru/u128calc/internal/format"
	"github.com/agbru/u128calc/internal/orchestration"
	"github.com/agbru/u128calc/internal/progress"
	"github.com/agbru/u128calc/internal/ui"
	"github.com/agbru/u128calc/internal/verify"
)

// MismatchDisplayLimit caps the number of mismatching cases printed in a
// verification report. A defective multiplier can diverge on thousands of
// pairs; the first few are enough to start debugging.
const MismatchDisplayLimit = 10

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during verification runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing shards.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for verification reports in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentVerificationReport displays the verification summary and, when the
// run found divergent pairs, a table of the first mismatching cases.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentVerificationReport(report verify.Report, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "\n--- Verification Summary ---\n")
	fmt.Fprintf(out, "Subject:   %s%s%s\n", ui.ColorBlue(), report.Subject, ui.ColorReset())
	fmt.Fprintf(out, "Reference: %s%s%s\n", ui.ColorBlue(), report.Reference, ui.ColorReset())
	fmt.Fprintf(out, "Cases:     %s%s%s\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprintf("%d", report.Cases)), ui.ColorReset())
	fmt.Fprintf(out, "Duration:  %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())

	if report.Passed() {
		fmt.Fprintf(out, "\nStatus: %s✅ Success. All products agree with the reference.%s\n",
			ui.ColorGreen(), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "\nStatus: %s❌ Failure. %d of %d cases diverge from the reference.%s\n",
		ui.ColorRed(), report.Failures(), report.Cases, ui.ColorReset())

	fmt.Fprintf(out, "\n%sOperand A%s            %sOperand B%s            %sGot / Want%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	shown := report.Mismatches
	if len(shown) > MismatchDisplayLimit {
		shown = shown[:MismatchDisplayLimit]
	}
	for _, m := range shown {
		fmt.Fprintf(out, "%s%#018x%s   %s%#018x%s   %s%s%s\n",
			ui.ColorCyan(), m.A, ui.ColorReset(),
			ui.ColorCyan(), m.B, ui.ColorReset(),
			ui.ColorRed(), m.Got.Hex(), ui.ColorReset())
		fmt.Fprintf(out, "%s   %s   %s%s%s\n",
			padRight("", 18), padRight("", 18),
			ui.ColorGreen(), m.Want.Hex(), ui.ColorReset())
	}
	if hidden := report.Failures() - len(shown); hidden > 0 {
		fmt.Fprintf(out, "... and %d more mismatching cases.\n", hidden)
	}
}

// padRight returns the string followed by spaces up to the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints a run error and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "\n%sRun interrupted after %s: %v%s\n",
			ui.ColorYellow(), format.FormatExecutionDuration(duration), err, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "\n%sError after %s: %v%s\n",
			ui.ColorRed(), format.FormatExecutionDuration(duration), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}
