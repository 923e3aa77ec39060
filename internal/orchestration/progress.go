package orchestration

import (
	"time"

	"github.com/agbru/u128calc/internal/format"
	"github.com/agbru/u128calc/internal/progress"
)

// ProgressAggregator manages multi-shard progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel. Both CLI and TUI
// use this to avoid duplicating the aggregation setup and update logic.
type ProgressAggregator struct {
	state      *format.ProgressWithETA
	numWorkers int
}

// NewProgressAggregator creates a new aggregator for the given number
// of shard workers. Returns nil if numWorkers <= 0.
func NewProgressAggregator(numWorkers int) *ProgressAggregator {
	if numWorkers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:      format.NewProgressWithETA(numWorkers),
		numWorkers: numWorkers,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// WorkerIndex is the index of the shard that sent the update.
	WorkerIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all shards.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.WorkerIndex, update.Value)
	return AggregatedProgress{
		WorkerIndex:     update.WorkerIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumWorkers returns the number of shards being tracked.
func (a *ProgressAggregator) NumWorkers() int {
	return a.numWorkers
}

// IsMultiWorker returns true if tracking more than one shard.
func (a *ProgressAggregator) IsMultiWorker() bool {
	return a.numWorkers > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numWorkers <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
