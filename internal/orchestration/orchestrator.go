package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/u128calc/internal/errors"
	"github.com/agbru/u128calc/internal/progress"
	"github.com/agbru/u128calc/internal/uint128"
	"github.com/agbru/u128calc/internal/verify"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking shard workers
// when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// progressStride is the number of cases a shard checks between progress
// updates. Checking a case is cheap, so reporting every case would swamp
// the channel.
const progressStride = 256

// tracerName identifies this package's spans to OpenTelemetry.
const tracerName = "github.com/agbru/u128calc/internal/orchestration"

// shardResult holds the outcome of a single verification shard.
type shardResult struct {
	cases      int
	mismatches []verify.Mismatch
}

// ExecuteVerification orchestrates the concurrent cross-verification of a
// subject multiplier against a reference implementation.
//
// The corpus is split into contiguous shards, one per worker. Each worker
// checks its shard case by case, reporting progress on the shared channel
// and recording mismatches rather than failing fast, so a single run
// surfaces every divergent pair.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - subject: The multiplier under test.
//   - reference: The trusted multiplier producing expected products.
//   - corpus: The operand pairs to check.
//   - workers: The number of concurrent shards (minimum 1).
//   - progressReporter: The progress reporter for displaying updates (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - verify.Report: The aggregated report across all shards.
//   - error: The context error if the run was canceled or timed out.
func ExecuteVerification(ctx context.Context, subject, reference uint128.Multiplier, corpus []verify.Case, workers int, progressReporter ProgressReporter, out io.Writer) (verify.Report, error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(corpus) && len(corpus) > 0 {
		workers = len(corpus)
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "verification.run")
	span.SetAttributes(
		attribute.String("subject", subject.Name()),
		attribute.String("reference", reference.Name()),
		attribute.Int("cases", len(corpus)),
		attribute.Int("workers", workers),
	)
	defer span.End()

	progressChan := make(chan progress.ProgressUpdate, workers*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, workers, out)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]shardResult, workers)

	for i, shard := range splitCorpus(corpus, workers) {
		idx, cases := i, shard
		g.Go(func() error {
			_, shardSpan := tracer.Start(ctx, fmt.Sprintf("verification.shard.%d", idx))
			defer shardSpan.End()

			res, err := checkShard(ctx, subject, reference, cases, idx, progressChan)
			results[idx] = res
			shardSpan.SetAttributes(
				attribute.Int("cases", res.cases),
				attribute.Int("mismatches", len(res.mismatches)),
			)
			return err
		})
	}

	runErr := g.Wait()
	close(progressChan)
	displayWg.Wait()

	return mergeShards(subject, reference, results), runErr
}

// checkShard verifies one contiguous slice of the corpus, pushing progress
// updates and honoring cancellation between strides.
func checkShard(ctx context.Context, subject, reference uint128.Multiplier, cases []verify.Case, workerIndex int, progressChan chan<- progress.ProgressUpdate) (shardResult, error) {
	res := shardResult{}

	for i, c := range cases {
		if i%progressStride == 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case progressChan <- progress.ProgressUpdate{WorkerIndex: workerIndex, Value: float64(i) / float64(len(cases))}:
			default: // non-blocking
			}
		}

		got, want, ok := verify.CheckCase(subject, reference, c)
		res.cases++
		if !ok {
			res.mismatches = append(res.mismatches, verify.Mismatch{Case: c, Got: got, Want: want})
		}
	}

	select {
	case progressChan <- progress.ProgressUpdate{WorkerIndex: workerIndex, Value: 1.0}:
	default:
	}
	return res, nil
}

// splitCorpus divides the corpus into n contiguous shards of near-equal size.
// The first len(corpus)%n shards receive one extra case.
func splitCorpus(corpus []verify.Case, n int) [][]verify.Case {
	shards := make([][]verify.Case, n)
	base := len(corpus) / n
	extra := len(corpus) % n

	offset := 0
	for i := range shards {
		size := base
		if i < extra {
			size++
		}
		shards[i] = corpus[offset : offset+size]
		offset += size
	}
	return shards
}

// mergeShards combines per-shard results into a single report. Mismatches are
// sorted by operands so the report order does not depend on shard scheduling.
func mergeShards(subject, reference uint128.Multiplier, results []shardResult) verify.Report {
	report := verify.Report{
		Subject:   subject.Name(),
		Reference: reference.Name(),
	}
	for _, res := range results {
		report.Cases += res.cases
		report.Mismatches = append(report.Mismatches, res.mismatches...)
	}
	sort.Slice(report.Mismatches, func(i, j int) bool {
		a, b := report.Mismatches[i], report.Mismatches[j]
		if a.A != b.A {
			return a.A < b.A
		}
		return a.B < b.B
	})
	return report
}

// AnalyzeVerification inspects a completed verification run and produces the
// process exit code.
//
// Parameters:
//   - report: The aggregated verification report.
//   - runErr: The error returned by ExecuteVerification, if any.
//   - duration: The total wall-clock time of the run.
//   - presenter: The result presenter for display formatting.
//   - errorHandler: Receives runErr when the run did not complete.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeVerification(report verify.Report, runErr error, duration time.Duration, presenter ResultPresenter, errorHandler ErrorHandler, out io.Writer) int {
	if runErr != nil {
		return errorHandler.HandleError(runErr, duration, out)
	}

	presenter.PresentVerificationReport(report, duration, out)

	if !report.Passed() {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}
