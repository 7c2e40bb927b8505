// Package progress defines the progress messages exchanged between the
// self-test workers and the presentation layer.
package progress

// ProgressUpdate reports the completion of one worker.
type ProgressUpdate struct {
	// WorkerIndex identifies the worker (strategy) within a run.
	WorkerIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives the completed fraction of a single worker.
type ProgressCallback func(value float64)

// ChannelCallback returns a callback forwarding values for worker index to
// ch. A nil channel yields a no-op callback. Intermediate updates are dropped
// when the channel buffer is full; the completing update (value >= 1) is
// always delivered, so ch must be drained until it is closed.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(value float64) {
		update := ProgressUpdate{WorkerIndex: index, Value: value}
		if value >= 1 {
			ch <- update
			return
		}
		select {
		case ch <- update:
		default:
		}
	}
}
