// Package progress defines the progress update type shared between the
// verification workers and the presentation layers (CLI, TUI).
package progress

// ProgressUpdate is a single progress sample emitted by a verification
// worker. Updates flow over a buffered channel so workers never block on a
// slow consumer.
type ProgressUpdate struct {
	// WorkerIndex identifies the worker that produced the sample.
	WorkerIndex int
	// Value is the fraction of the worker's share of the corpus already
	// checked, in [0, 1].
	Value float64
}
