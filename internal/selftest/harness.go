// Package selftest checks division strategies against a table of known
// results, repeated for a configurable number of loops.
package selftest

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/division"
	"github.com/agbru/longdiv/internal/logging"
	"github.com/agbru/longdiv/internal/progress"
)

const tracerName = "github.com/agbru/longdiv/internal/selftest"

// cancelCheckInterval is the number of checks between context polls.
const cancelCheckInterval = 64

// Result summarizes one strategy's run.
type Result struct {
	Strategy string
	// Checks is the number of divisions performed.
	Checks int
	// Failures is the number of failed checks for this strategy.
	Failures int
	Duration time.Duration
	// Err is set when the run stopped early, typically on cancellation.
	Err error
}

// Harness runs a case table against division strategies.
type Harness struct {
	cases    []Case
	loops    int
	observer division.Observer
	logger   logging.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLoops sets how many times the table is repeated. Values below one
// are treated as one.
func WithLoops(loops int) Option {
	return func(h *Harness) { h.loops = max(loops, 1) }
}

// WithObserver attaches a division observer to every Divider the harness
// builds.
func WithObserver(o division.Observer) Option {
	return func(h *Harness) { h.observer = o }
}

// WithLogger sets the logger used for failing cases.
func WithLogger(l logging.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// NewHarness returns a harness over cases.
func NewHarness(cases []Case, opts ...Option) *Harness {
	h := &Harness{cases: cases, loops: 1}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Cases returns the number of table entries.
func (h *Harness) Cases() int { return len(h.cases) }

// Loops returns the configured repetition count.
func (h *Harness) Loops() int { return h.loops }

// Run checks every case with s for the configured loops, recording failures
// in tally. report receives the completed fraction after each loop and may
// be nil. Run stops early when ctx is done and returns its error in
// Result.Err.
func (h *Harness) Run(ctx context.Context, s division.Strategy, tally *Tally, report progress.ProgressCallback) Result {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "selftest.strategy")
	defer span.End()
	span.SetAttributes(
		attribute.String("strategy", s.Name()),
		attribute.Int("cases", len(h.cases)),
		attribute.Int("loops", h.loops),
	)

	opts := []division.Option{division.WithStrategy(s)}
	if h.observer != nil {
		opts = append(opts, division.WithObserver(h.observer))
	}
	d := division.NewDivider(opts...)

	res := Result{Strategy: s.Name()}
	start := time.Now()

	for loop := 0; loop < h.loops; loop++ {
		for i, c := range h.cases {
			if res.Checks%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					res.Err = err
					span.SetStatus(codes.Error, "canceled")
					res.Duration = time.Since(start)
					return res
				}
			}
			res.Checks++
			if f, failed := check(d, c); failed {
				f.Strategy = s.Name()
				res.Failures++
				tally.Record(f)
				if h.logger != nil {
					h.logger.Error("self-test case failed", f.Err,
						logging.String("strategy", s.Name()),
						logging.String("case", c.Name),
						logging.String("kind", f.Kind.String()),
						logging.Int("loop", loop),
						logging.Int("index", i))
				}
			}
		}
		if report != nil {
			report(float64(loop+1) / float64(h.loops))
		}
	}

	span.SetAttributes(attribute.Int("checks", res.Checks), attribute.Int("failures", res.Failures))
	if res.Failures > 0 {
		span.SetStatus(codes.Error, "mismatch")
	}
	res.Duration = time.Since(start)
	return res
}

// check runs one case and reports the first discrepancy.
func check(d *division.Divider, c Case) (Failure, bool) {
	m, n := len(c.U), len(c.V)
	q := make([]arith.Digit, max(m-n+1, 1))
	r := make([]arith.Digit, max(n, 1))
	err := d.Divide(q, r, c.U, c.V)

	if c.WantErr != nil {
		if err == nil || !errors.Is(err, c.WantErr) {
			return Failure{Case: c, Kind: UnexpectedSuccess, Err: err}, true
		}
		return Failure{}, false
	}
	if err != nil {
		return Failure{Case: c, Kind: UnexpectedError, Err: err}, true
	}

	q = q[:m-n+1]
	if !slices.Equal(q, c.Q) {
		return Failure{Case: c, Kind: QuotientMismatch, Got: q}, true
	}
	if !slices.Equal(r[:n], c.R) {
		return Failure{Case: c, Kind: RemainderMismatch, Got: r[:n]}, true
	}

	// The quotient must not depend on whether the remainder is requested.
	qOnly := make([]arith.Digit, m-n+1)
	if err := d.Divide(qOnly, nil, c.U, c.V); err != nil {
		return Failure{Case: c, Kind: UnexpectedError, Err: err}, true
	}
	if !slices.Equal(qOnly, c.Q) {
		return Failure{Case: c, Kind: QuotientMismatch, Got: qOnly}, true
	}
	return Failure{}, false
}
