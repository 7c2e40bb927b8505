package selftest

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/diag"
)

// FailureKind classifies a failed self-test check.
type FailureKind int

const (
	// UnexpectedError means a valid division was rejected.
	UnexpectedError FailureKind = iota
	// UnexpectedSuccess means an invalid division was accepted, or rejected
	// with the wrong error.
	UnexpectedSuccess
	// QuotientMismatch means a quotient digit differs from the table.
	QuotientMismatch
	// RemainderMismatch means a remainder digit differs from the table.
	RemainderMismatch
)

// String returns a short name for the kind.
func (k FailureKind) String() string {
	switch k {
	case UnexpectedError:
		return "unexpected error"
	case UnexpectedSuccess:
		return "unexpected success"
	case QuotientMismatch:
		return "quotient mismatch"
	case RemainderMismatch:
		return "remainder mismatch"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure records one failed check.
type Failure struct {
	Strategy string
	Case     Case
	Kind     FailureKind
	// Got holds the computed quotient or remainder for a mismatch.
	Got []arith.Digit
	// Err is the error returned by the division, if any.
	Err error
}

// Error implements error so a Failure can travel through error paths.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: case %s: %s", f.Strategy, f.Case.Name, f.Kind)
}

// Dump writes the operands, the computed digits and the expected digits in
// the diagnostic format.
func (f Failure) Dump(w io.Writer) error {
	var lines []struct {
		label  string
		digits []arith.Digit
	}
	add := func(label string, digits []arith.Digit) {
		lines = append(lines, struct {
			label  string
			digits []arith.Digit
		}{label, digits})
	}

	switch f.Kind {
	case UnexpectedError:
		add("FATAL: Unexpected error for dividend u =", f.Case.U)
		add("                            divisor  v =", f.Case.V)
	case UnexpectedSuccess:
		add("FATAL: Unexpected success for dividend u =", f.Case.U)
		add("                              divisor  v =", f.Case.V)
	case QuotientMismatch:
		add("FATAL ERROR: dividend u =", f.Case.U)
		add("             divisor  v =", f.Case.V)
		add("               quotient =", f.Got)
		add("              should be =", f.Case.Q)
	case RemainderMismatch:
		add("FATAL ERROR: dividend u =", f.Case.U)
		add("             divisor  v =", f.Case.V)
		add("              remainder =", f.Got)
		add("              should be =", f.Case.R)
	}
	for _, l := range lines {
		if err := diag.Dump(w, l.label, l.digits); err != nil {
			return err
		}
	}
	if f.Err != nil {
		if _, err := fmt.Fprintf(w, "             error      = %v\n", f.Err); err != nil {
			return err
		}
	}
	return nil
}

// DefaultSampleLimit bounds the failures a Tally keeps for reporting.
const DefaultSampleLimit = 16

// Tally counts failures across concurrent self-test runs and keeps the first
// few for reporting. It is owned by the caller and safe for concurrent use.
type Tally struct {
	mu      sync.Mutex
	count   int
	limit   int
	samples []Failure
}

// NewTally returns a tally that keeps at most limit samples. A limit of zero
// or less selects DefaultSampleLimit.
func NewTally(limit int) *Tally {
	if limit <= 0 {
		limit = DefaultSampleLimit
	}
	return &Tally{limit: limit}
}

// Record counts f and keeps it if the sample limit is not reached.
func (t *Tally) Record(f Failure) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	if len(t.samples) < t.limit {
		t.samples = append(t.samples, f)
	}
}

// Count returns the number of recorded failures.
func (t *Tally) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Samples returns a copy of the kept failures in recording order.
func (t *Tally) Samples() []Failure {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Failure, len(t.samples))
	copy(out, t.samples)
	return out
}
