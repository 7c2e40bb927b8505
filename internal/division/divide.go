package division

import "github.com/agbru/longdiv/internal/arith"

// Path identifies which branch of the algorithm served a division.
type Path string

const (
	// PathRejected marks a call that failed parameter validation.
	PathRejected Path = "rejected"
	// PathSingleDigit marks the n = 1 short division.
	PathSingleDigit Path = "single_digit"
	// PathGeneral marks Knuth's Algorithm D for n >= 2.
	PathGeneral Path = "general"
)

// Event summarizes one Divide call for an Observer.
type Event struct {
	Path Path
	// M and N are the dividend and divisor lengths.
	M, N int
	// Shift is the normalization shift (general path only).
	Shift int
	// Overflows counts quotient estimates that saturated in WideDivide.
	Overflows int
	// Refinements counts qhat decrements made using the third digit.
	Refinements int
	// AddBacks counts quotient digits corrected after a negative
	// multiply-subtract.
	AddBacks int
	// Err is the rejection cause, nil on success.
	Err error
}

// Observer receives one Event per Divide call. Implementations must be safe
// for concurrent use if the Divider is shared between goroutines.
type Observer interface {
	ObserveDivision(Event)
}

// Divider performs long division with a fixed multiply-subtract strategy.
// A Divider holds no per-call state and may be used concurrently.
type Divider struct {
	strategy Strategy
	observer Observer
}

// Option configures a Divider.
type Option func(*Divider)

// WithStrategy selects the multiply-subtract formulation.
func WithStrategy(s Strategy) Option {
	return func(d *Divider) { d.strategy = s }
}

// WithObserver attaches an observer notified after every call.
func WithObserver(o Observer) Option {
	return func(d *Divider) { d.observer = o }
}

// NewDivider returns a Divider using DirectStrategy unless configured otherwise.
func NewDivider(opts ...Option) *Divider {
	d := &Divider{}
	for _, opt := range opts {
		opt(d)
	}
	if d.strategy == nil {
		d.strategy = DirectStrategy{}
	}
	return d
}

// Strategy returns the divider's multiply-subtract strategy.
func (d *Divider) Strategy() Strategy { return d.strategy }

var defaultDivider = NewDivider()

// Divide computes q = u / v and, when r is non-nil, r = u mod v using the
// default Divider. See Divider.Divide.
func Divide(q, r, u, v []arith.Digit) error {
	return defaultDivider.Divide(q, r, u, v)
}

// DivMod allocates and returns the quotient (m-n+1 digits) and remainder
// (n digits) of u / v using the default Divider.
func DivMod(u, v []arith.Digit) (q, r []arith.Digit, err error) {
	return defaultDivider.DivMod(u, v)
}

// DivMod allocates and returns the quotient (m-n+1 digits) and remainder
// (n digits) of u / v.
func (d *Divider) DivMod(u, v []arith.Digit) (q, r []arith.Digit, err error) {
	if err := validateOperands(len(u), v); err != nil {
		d.observe(Event{Path: PathRejected, M: len(u), N: len(v), Err: err})
		return nil, nil, err
	}
	q = make([]arith.Digit, len(u)-len(v)+1)
	r = make([]arith.Digit, len(v))
	if err := d.Divide(q, r, u, v); err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Divide computes the quotient and remainder of u / v, where u has m >= 1
// digits and v has n >= 1 digits with v[n-1] != 0, all little-endian.
//
// q must hold at least m-n+1 digits; only q[:m-n+1] is written. r may be nil
// to skip the remainder, otherwise it must hold at least n digits and
// r[:n] is written. Both results may carry leading zero digits. u and v are
// never modified. On error no output digit is written.
func (d *Divider) Divide(q, r, u, v []arith.Digit) error {
	m, n := len(u), len(v)
	if err := validate(q, r, u, v); err != nil {
		d.observe(Event{Path: PathRejected, M: m, N: n, Err: err})
		return err
	}

	if n == 1 {
		divideSingle(q, r, u, v[0])
		d.observe(Event{Path: PathSingleDigit, M: m, N: n})
		return nil
	}

	ev := d.divideGeneral(q, r, u, v)
	d.observe(ev)
	return nil
}

func (d *Divider) observe(ev Event) {
	if d.observer != nil {
		d.observer.ObserveDivision(ev)
	}
}

func validateOperands(m int, v []arith.Digit) error {
	n := len(v)
	switch {
	case n <= 0:
		return &ParameterError{Err: ErrInvalidDivisorLength, M: m, N: n}
	case m < n:
		return &ParameterError{Err: ErrDividendShorterThanDivisor, M: m, N: n}
	case v[n-1] == 0:
		return &ParameterError{Err: ErrUnnormalizedDivisor, M: m, N: n}
	}
	return nil
}

func validate(q, r, u, v []arith.Digit) error {
	m, n := len(u), len(v)
	if err := validateOperands(m, v); err != nil {
		return err
	}
	if len(q) < m-n+1 {
		return &ParameterError{Err: ErrQuotientBufferTooShort, M: m, N: n}
	}
	if r != nil && len(r) < n {
		return &ParameterError{Err: ErrRemainderBufferTooShort, M: m, N: n}
	}
	return nil
}

// divideSingle is short division by one digit, from the most significant
// dividend digit down, with a 64-bit running remainder.
func divideSingle(q, r, u []arith.Digit, v arith.Digit) {
	d := uint64(v)
	var k uint64
	for j := len(u) - 1; j >= 0; j-- {
		dig2 := k<<arith.DigitBits | uint64(u[j])
		q[j] = arith.Digit(dig2 / d)
		k = dig2 % d
	}
	if r != nil {
		r[0] = arith.Digit(k)
	}
}

// divideGeneral is Knuth's Algorithm D for n >= 2.
func (d *Divider) divideGeneral(q, r, u, v []arith.Digit) Event {
	m, n := len(u), len(v)
	s := uint(arith.LeadingZeroCount(v[n-1]))
	ev := Event{Path: PathGeneral, M: m, N: n, Shift: int(s)}

	// Normalize so that vn[n-1] has its top bit set. un gets an extra
	// top digit for the bits shifted out of u.
	vn := arith.AcquireUninitialized(n)
	defer arith.Release(vn)
	arith.ShiftLeft(vn, v, s)

	un := arith.AcquireUninitialized(m + 1)
	defer arith.Release(un)
	un[m] = arith.ShiftLeft(un[:m], u, s)

	vtop := uint64(vn[n-1])
	vnext := uint64(vn[n-2])

	for j := m - n; j >= 0; j-- {
		window := un[j : j+n+1]

		// Estimate qhat from the top two window digits.
		dig2 := uint64(un[j+n])<<arith.DigitBits | uint64(un[j+n-1])
		qhat, rhat, overflow := arith.WideDivide(dig2, vn[n-1])
		if overflow {
			rhat = dig2 - uint64(qhat)*vtop
			ev.Overflows++
		}

		// Refine with the third digit. qhat never drops below the true digit.
		for rhat < arith.Base && uint64(qhat)*vnext > rhat<<arith.DigitBits|uint64(un[j+n-2]) {
			qhat--
			rhat += vtop
			ev.Refinements++
		}

		borrow := d.strategy.MulSub(qhat, vn, window)

		q[j] = qhat
		if borrow {
			// Add one divisor back; the carry out cancels the borrow.
			q[j]--
			window[n] += arith.AddWithCarry(window[:n], window[:n], vn, 0)
			ev.AddBacks++
		}
	}

	if r != nil {
		arith.ShiftRight(r[:n], un[:n], s)
	}
	return ev
}
