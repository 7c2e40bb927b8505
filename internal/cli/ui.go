//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/longdiv/internal/format"
	"github.com/agbru/longdiv/internal/orchestration"
	"github.com/agbru/longdiv/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate so the bar and spinner tick together.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner and an aggregated progress bar with ETA
// until progressChan is closed, then prints the final bar and calls wg.Done.
// With no strategies to track it only drains the channel.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numStrategies)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				avg := agg.CalculateAverage()
				fmt.Fprintf(out, "[%s] %5.1f%%\n", format.ProgressBar(avg, ProgressBarWidth), avg*100)
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(" " + format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth))
		}
	}
}
