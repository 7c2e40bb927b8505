package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks the completion of several concurrent workers.
type ProgressState struct {
	progresses []float64
	numWorkers int
}

// NewProgressState tracks numWorkers workers, all at zero.
func NewProgressState(numWorkers int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records value for worker index. Out-of-range indices are ignored
// and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = min(max(value, 0), 1)
	}
}

// CalculateAverage returns the mean completion across workers.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numWorkers)
}

// maxETA caps estimates from very slow early progress.
const maxETA = 24 * time.Hour

// rateSmoothing is the weight of the newest sample in the progress rate.
const rateSmoothing = 0.3

// ProgressWithETA adds a smoothed completion rate to ProgressState.
type ProgressWithETA struct {
	*ProgressState
	progressRate float64 // fraction per second
	lastUpdate   time.Time
	lastProgress float64
}

// NewProgressWithETA starts tracking numWorkers workers now.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numWorkers),
		lastUpdate:    time.Now(),
	}
}

// UpdateWithETA records value for worker index and returns the average
// progress with the estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.lastUpdate).Seconds(); elapsed > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = rateSmoothing*rate + (1-rateSmoothing)*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, 0 while unknown.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// FormatETA renders an estimate compactly ("45s", "2m30s", "1h15m").
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "estimating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress as a bar of length cells.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var b strings.Builder
	b.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
