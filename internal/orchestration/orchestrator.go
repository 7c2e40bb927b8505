package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/longdiv/internal/division"
	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/progress"
	"github.com/agbru/longdiv/internal/selftest"
)

// ProgressBufferMultiplier sizes the progress channel per strategy so slow
// displays rarely cause dropped updates.
const ProgressBufferMultiplier = 5

// ExecuteSelftests runs harness once per strategy, concurrently, recording
// failures in tally. Results are returned in strategy order. A failing
// strategy does not stop the others; cancellation of ctx does.
func ExecuteSelftests(ctx context.Context, harness *selftest.Harness, strategies []division.Strategy, tally *selftest.Tally, reporter ProgressReporter, out io.Writer) []selftest.Result {
	ctx, span := otel.Tracer("github.com/agbru/longdiv/internal/orchestration").Start(ctx, "selftest.run")
	defer span.End()
	span.SetAttributes(attribute.Int("strategies", len(strategies)))

	g, ctx := errgroup.WithContext(ctx)
	results := make([]selftest.Result, len(strategies))
	progressChan := make(chan progress.ProgressUpdate, len(strategies)*ProgressBufferMultiplier)

	displayDone := startDisplay(reporter, progressChan, len(strategies), out)

	for i, s := range strategies {
		g.Go(func() error {
			results[i] = harness.Run(ctx, s, tally, progress.ChannelCallback(progressChan, i))
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayDone()

	span.SetAttributes(attribute.Int("failures", tally.Count()))
	return results
}

// AnalyzeSelftestResults presents the results and returns the exit code:
// the run error's code if any strategy stopped early, ExitErrorMismatch if
// any check failed, ExitSuccess otherwise. A deadline stop is reported as a
// TimeoutError carrying limit.
func AnalyzeSelftestResults(results []selftest.Result, tally *selftest.Tally, limit time.Duration, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	presenter.PresentSummary(results, out)

	var total time.Duration
	for _, r := range results {
		total = max(total, r.Duration)
	}
	if err := stopError(results); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: "selftest", Limit: limit}
		}
		return handler.HandleError(err, total, out)
	}

	if n := tally.Count(); n > 0 {
		presenter.PresentFailures(tally.Samples(), n, out)
		fmt.Fprintf(out, "\nGlobal Status: FAILURE. %v.\n", apperrors.MismatchError{Failures: n})
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All strategies agree with the reference results.\n")
	return apperrors.ExitSuccess
}

// stopError returns the first error that is not a cancellation or deadline,
// falling back to the first context error.
func stopError(results []selftest.Result) error {
	var ctxErr error
	for _, r := range results {
		switch {
		case r.Err == nil:
		case apperrors.IsContextError(r.Err):
			if ctxErr == nil {
				ctxErr = r.Err
			}
		default:
			return r.Err
		}
	}
	return ctxErr
}
