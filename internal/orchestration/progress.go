package orchestration

import (
	"time"

	"github.com/agbru/longdiv/internal/format"
	"github.com/agbru/longdiv/internal/progress"
)

// ProgressAggregator folds per-strategy progress updates into an average
// with an ETA.
type ProgressAggregator struct {
	state *format.ProgressWithETA
}

// NewProgressAggregator tracks numStrategies runs. It returns nil when
// there is nothing to track.
func NewProgressAggregator(numStrategies int) *ProgressAggregator {
	if numStrategies <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state: format.NewProgressWithETA(numStrategies),
	}
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	StrategyIndex   int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update applies one progress update.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.WorkerIndex, update.Value)
	return AggregatedProgress{
		StrategyIndex:   update.WorkerIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 { return a.state.CalculateAverage() }

// GetETA returns the current estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

// DrainChannel discards updates until progressChan is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
