package app

import (
	"context"
	"io"
	"time"

	"github.com/agbru/u128calc/internal/cli"
	"github.com/agbru/u128calc/internal/config"
	"github.com/agbru/u128calc/internal/logging"
	"github.com/agbru/u128calc/internal/metrics"
	"github.com/agbru/u128calc/internal/orchestration"
	"github.com/agbru/u128calc/internal/verify"
)

// runVerify cross-checks the portable multiplier against the hardware
// reference over a seeded corpus and reports any divergence.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	subject, reference := orchestration.VerificationPair()
	corpus := verify.Corpus(a.Config.RandomCases, a.Config.Seed)
	workers := config.ResolveWorkers(a.Config)

	if !a.Config.Quiet {
		cli.PrintVerificationConfig(a.Config, workers, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	start := time.Now()
	report, runErr := orchestration.ExecuteVerification(ctx, subject, reference, corpus, workers, progressReporter, progressOut)
	duration := time.Since(start)

	delta := collector.Snapshot().Delta(before)
	a.Log.Debug("verification run finished",
		logging.Int("cases", report.Cases),
		logging.Int("mismatches", report.Failures()),
		logging.String("duration", duration.String()),
		logging.Uint64("heap_alloc_bytes", delta.HeapAlloc))

	presenter := cli.CLIResultPresenter{}
	return orchestration.AnalyzeVerification(report, runErr, duration, presenter, presenter, out)
}
