// This file implements the multiply-subtract step of long division.
//
// Every strategy computes window = window - qhat*vn over len(vn)+1 digits,
// where vn contributes an implicit zero top digit, and reports whether the
// exact result is negative. They differ only in how the carry is threaded
// between digits, which matters when mapping the loop onto wide or vector
// multiply-add hardware; their outputs are bit-identical.

package division

import "github.com/agbru/longdiv/internal/arith"

// Strategy is one formulation of the multiply-subtract step.
type Strategy interface {
	// Name returns the registry key of the strategy.
	Name() string
	// MulSub subtracts qhat*vn from window in place. len(window) must be
	// len(vn)+1. It returns true when a borrow propagated past the top
	// digit, meaning qhat was one too large.
	MulSub(qhat arith.Digit, vn, window []arith.Digit) (borrow bool)
}

// digitAt returns vn[i], or 0 for the implicit top digit.
func digitAt(vn []arith.Digit, i int) uint64 {
	if i < len(vn) {
		return uint64(vn[i])
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Direct
// ─────────────────────────────────────────────────────────────────────────────

// DirectStrategy subtracts each 64-bit partial product together with the
// running borrow, deriving the next borrow from the high half of the
// wrapped 64-bit difference.
type DirectStrategy struct{}

// Name returns "direct".
func (DirectStrategy) Name() string { return "direct" }

// MulSub implements Strategy.
func (DirectStrategy) MulSub(qhat arith.Digit, vn, window []arith.Digit) bool {
	var borrow arith.Digit
	for i := range window {
		value := uint64(window[i]) - uint64(qhat)*digitAt(vn, i) - uint64(borrow)
		// The high half is the two's complement of the next borrow.
		borrow = -arith.Digit(value >> arith.DigitBits)
		window[i] = arith.Digit(value)
	}
	return borrow != 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Signed
// ─────────────────────────────────────────────────────────────────────────────

// SignedStrategy is Knuth's formulation: a signed running carry k absorbs
// the high half of each product and the sign of the intermediate result.
type SignedStrategy struct{}

// Name returns "signed".
func (SignedStrategy) Name() string { return "signed" }

// MulSub implements Strategy.
func (SignedStrategy) MulSub(qhat arith.Digit, vn, window []arith.Digit) bool {
	n := len(vn)
	var k int64
	for i := 0; i < n; i++ {
		p := uint64(qhat) * uint64(vn[i])
		t := int64(window[i]) - k - int64(p&uint64(arith.MaxDigit))
		window[i] = arith.Digit(t)
		k = int64(p>>arith.DigitBits) - t>>arith.DigitBits
	}
	t := int64(window[n]) - k
	window[n] = arith.Digit(t)
	return t < 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Split
// ─────────────────────────────────────────────────────────────────────────────

// SplitStrategy runs two passes: a carry-free multiply-subtract that stores
// each 64-bit difference as separate high and low accumulators, then a
// borrow-propagation pass over the recombined values. The first pass has no
// loop-carried dependency.
type SplitStrategy struct{}

// Name returns "split".
func (SplitStrategy) Name() string { return "split" }

// MulSub implements Strategy.
func (SplitStrategy) MulSub(qhat arith.Digit, vn, window []arith.Digit) bool {
	hi := arith.AcquireUninitialized(len(window))
	defer arith.Release(hi)
	lo := arith.AcquireUninitialized(len(window))
	defer arith.Release(lo)

	for i := range window {
		value := uint64(window[i]) - uint64(qhat)*digitAt(vn, i)
		lo[i] = arith.Digit(value)
		hi[i] = arith.Digit(value >> arith.DigitBits)
	}

	var borrow arith.Digit
	for i := range window {
		value := (uint64(hi[i])<<arith.DigitBits | uint64(lo[i])) - uint64(borrow)
		borrow = ^arith.Digit(value>>arith.DigitBits) + 1
		window[i] = arith.Digit(value)
	}
	return borrow != 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Complement
// ─────────────────────────────────────────────────────────────────────────────

// ComplementStrategy replaces subtraction by addition of the one's
// complement of each partial product. The running value c encodes
// 1 - borrow modulo 2^32, so the step is a pure multiply-add with carry.
type ComplementStrategy struct{}

// Name returns "complement".
func (ComplementStrategy) Name() string { return "complement" }

// MulSub implements Strategy.
func (ComplementStrategy) MulSub(qhat arith.Digit, vn, window []arith.Digit) bool {
	carry := arith.Digit(1)
	for i := range window {
		result := uint64(window[i]) + ^(uint64(qhat) * digitAt(vn, i)) + uint64(carry)
		high := arith.Digit(result >> arith.DigitBits)
		// A carry above 1 already wrapped into the high half.
		if carry <= 1 {
			high++
		}
		carry = high
		window[i] = arith.Digit(result)
	}
	return carry != 1
}

// ─────────────────────────────────────────────────────────────────────────────
// Two-pass
// ─────────────────────────────────────────────────────────────────────────────

// TwoPassStrategy forms the full (n+1)-digit product qhat*vn with a
// multiply-add pass, then subtracts it from the window with a ripple
// subtract-with-borrow pass.
type TwoPassStrategy struct{}

// Name returns "twopass".
func (TwoPassStrategy) Name() string { return "twopass" }

// MulSub implements Strategy.
func (TwoPassStrategy) MulSub(qhat arith.Digit, vn, window []arith.Digit) bool {
	product := arith.AcquireUninitialized(len(window))
	defer arith.Release(product)

	arith.MultiplyByDigitExtend(product, vn, qhat)
	return arith.SubtractWithBorrow(window, window, product, 0) != 0
}
