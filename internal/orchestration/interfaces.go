package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/u128calc/internal/progress"
	"github.com/agbru/u128calc/internal/verify"
)

// ProgressReporter defines the interface for displaying verification progress.
// This interface decouples the orchestration layer from the presentation
// layer, so the shard workers never know whether their updates end up in a
// spinner, a progress bar, or nowhere at all.
//
// Implementations handle the visual representation of progress while the
// orchestration layer focuses on coordinating the shards.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from shard workers.
	//   - numWorkers: The number of concurrent shards being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
// This allows passing a function directly where a ProgressReporter is expected.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting verification outcomes.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats (CLI, JSON, etc.) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentVerificationReport displays the verification summary, including
	// any mismatching cases.
	PresentVerificationReport(report verify.Report, duration time.Duration, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
