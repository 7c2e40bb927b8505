package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/longdiv/internal/progress"
)

// startDisplay runs reporter in a goroutine and returns a function that
// waits for it to finish. The caller must close progressChan first.
func startDisplay(reporter ProgressReporter, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer) (wait func()) {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, progressChan, numStrategies, out)
	return wg.Wait
}
