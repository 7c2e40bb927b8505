package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/longdiv/internal/progress"
	"github.com/agbru/longdiv/internal/selftest"
)

// ProgressReporter displays progress for concurrent strategy runs.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done. It runs in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter drains the channel without output.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders self-test outcomes.
type ResultPresenter interface {
	// PresentSummary prints one row per strategy.
	PresentSummary(results []selftest.Result, out io.Writer)
	// PresentFailures prints the kept failure samples out of total.
	PresentFailures(samples []selftest.Failure, total int, out io.Writer)
}

// ErrorHandler reports a run error and returns its exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
