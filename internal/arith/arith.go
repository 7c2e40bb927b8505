// This file provides the word-level and vector-level primitives used by long
// division. All vectors are little-endian: index 0 holds the least
// significant digit.

package arith

import "math/bits"

// Digit is a single base-2^32 digit of a multi-precision unsigned integer.
type Digit uint32

const (
	// DigitBits is the width of a Digit in bits.
	DigitBits = 32
	// MaxDigit is the largest value a Digit can hold.
	MaxDigit Digit = 1<<DigitBits - 1
	// Base is the radix of the positional system (2^32).
	Base uint64 = 1 << DigitBits
)

// ─────────────────────────────────────────────────────────────────────────────
// Word Operations
// ─────────────────────────────────────────────────────────────────────────────

// LeadingZeroCount returns the number of leading zero bits in x.
// The result is 32 for x == 0.
func LeadingZeroCount(x Digit) int {
	return bits.LeadingZeros32(uint32(x))
}

// WideDivide divides a 64-bit numerator by a 32-bit divisor.
//
// When numerator>>32 >= divisor the quotient does not fit in a Digit. In that
// case WideDivide reports overflow and returns q = MaxDigit and r = 0; q is
// then only an upper bound and the caller must compute the true remainder as
// numerator - q*divisor in 64-bit arithmetic. A zero divisor always reports
// overflow.
func WideDivide(numerator uint64, divisor Digit) (q Digit, r uint64, overflow bool) {
	d := uint64(divisor)
	if numerator>>DigitBits >= d {
		return MaxDigit, 0, true
	}
	return Digit(numerator / d), numerator % d, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector Operations
// ─────────────────────────────────────────────────────────────────────────────

// MultiplyByDigit computes z = x * y over len(x) digits and returns the
// final carry, which is the product's extra top digit.
// z must be at least as long as x.
func MultiplyByDigit(z, x []Digit, y Digit) (carry Digit) {
	for i := 0; i < len(z) && i < len(x); i++ {
		p := uint64(x[i])*uint64(y) + uint64(carry)
		z[i] = Digit(p)
		carry = Digit(p >> DigitBits)
	}
	return carry
}

// MultiplyByDigitExtend computes z = x * y where z has len(x)+1 digits,
// storing the carry in the top digit.
func MultiplyByDigitExtend(z, x []Digit, y Digit) {
	z[len(x)] = MultiplyByDigit(z[:len(x)], x, y)
}

// AddWithCarry computes z = x + y + carry over equal-length vectors and
// returns the carry out (0 or 1). carry must be 0 or 1.
func AddWithCarry(z, x, y []Digit, carry Digit) Digit {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		s := uint64(x[i]) + uint64(y[i]) + uint64(carry)
		z[i] = Digit(s)
		carry = Digit(s >> DigitBits)
	}
	return carry
}

// SubtractWithBorrow computes z = x - y - borrow over equal-length vectors and
// returns the borrow out (0 or 1). borrow must be 0 or 1.
func SubtractWithBorrow(z, x, y []Digit, borrow Digit) Digit {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		d := uint64(x[i]) - uint64(y[i]) - uint64(borrow)
		z[i] = Digit(d)
		// An underflow wraps into the top half, setting bit 63.
		borrow = Digit(d >> 63)
	}
	return borrow
}

// ShiftLeft computes z = x << s over len(z) digits and returns the bits
// shifted out of the top digit. s must be in [0, 31]. z and x may alias.
func ShiftLeft(z, x []Digit, s uint) (c Digit) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	s &= DigitBits - 1
	ŝ := DigitBits - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// ShiftRight computes z = x >> s over len(z) digits and returns the bits
// shifted out of the bottom digit, left-aligned. s must be in [0, 31].
// z and x may alias.
func ShiftRight(z, x []Digit, s uint) (c Digit) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	s &= DigitBits - 1
	ŝ := DigitBits - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}
