package division

import (
	"errors"
	"fmt"
)

// Parameter errors returned by Divide. They are detected before any output
// digit is written and are always wrapped in a *ParameterError.
var (
	// ErrInvalidDivisorLength reports a divisor with no digits.
	ErrInvalidDivisorLength = errors.New("divisor has no digits")
	// ErrDividendShorterThanDivisor reports m < n.
	ErrDividendShorterThanDivisor = errors.New("dividend is shorter than divisor")
	// ErrUnnormalizedDivisor reports a divisor whose most significant digit is zero.
	ErrUnnormalizedDivisor = errors.New("divisor has a zero most significant digit")
	// ErrQuotientBufferTooShort reports a quotient buffer with fewer than m-n+1 digits.
	ErrQuotientBufferTooShort = errors.New("quotient buffer is too short")
	// ErrRemainderBufferTooShort reports a non-nil remainder buffer with fewer than n digits.
	ErrRemainderBufferTooShort = errors.New("remainder buffer is too short")
)

// ParameterError describes a rejected division call. M and N are the
// dividend and divisor lengths as passed by the caller.
type ParameterError struct {
	Err error
	M   int
	N   int
}

// Error returns the sentinel message with the operand lengths.
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid division parameters (m=%d, n=%d): %v", e.M, e.N, e.Err)
}

// Unwrap returns the sentinel so errors.Is can match it.
func (e *ParameterError) Unwrap() error { return e.Err }

// Reason returns a short, stable identifier for a division error, suitable
// for metric labels and logs. Unknown errors map to "other".
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidDivisorLength):
		return "invalid_divisor_length"
	case errors.Is(err, ErrDividendShorterThanDivisor):
		return "dividend_shorter_than_divisor"
	case errors.Is(err, ErrUnnormalizedDivisor):
		return "unnormalized_divisor"
	case errors.Is(err, ErrQuotientBufferTooShort):
		return "quotient_buffer_too_short"
	case errors.Is(err, ErrRemainderBufferTooShort):
		return "remainder_buffer_too_short"
	default:
		return "other"
	}
}
