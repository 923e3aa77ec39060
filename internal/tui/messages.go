// Package tui implements the full-screen verification dashboard built
// on bubbletea. The dashboard runs a multiplier verification in the
// background and streams progress, memory, and system statistics into
// live panels.
package tui

import (
	"time"

	"github.com/agbru/u128calc/internal/verify"
)

// ProgressMsg carries one aggregated progress update from a
// verification worker.
type ProgressMsg struct {
	WorkerIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been drained.
type ProgressDoneMsg struct{}

// ReportMsg carries the finished verification report.
type ReportMsg struct {
	Report   verify.Report
	Duration time.Duration
}

// ErrorMsg carries a verification failure (timeout, cancellation, or
// an internal error).
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// VerificationCompleteMsg signals the end of a verification run.
// Generation guards against stale messages after a restart.
type VerificationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the run context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic UI refreshes and stat sampling.
type TickMsg time.Time

// MemStatsMsg carries a sample of the Go runtime memory statistics.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a sample of system-wide CPU and memory usage.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
