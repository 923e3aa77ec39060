// Package orchestration coordinates the concurrent cross-verification of
// 128-bit multiplier implementations and aggregates shard results into a
// single report. It decouples business logic from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
