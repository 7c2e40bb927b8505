// This file provides pooled scratch vectors so a division call can borrow
// its normalized working copies without allocating on every invocation.

package arith

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Digit Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// scratchPools pools []Digit slices by size class: 16, 64, 256, 1K, 4K, 16K, 64K digits.
var scratchPools = [...]sync.Pool{
	{New: func() any { return make([]Digit, 16) }},
	{New: func() any { return make([]Digit, 64) }},
	{New: func() any { return make([]Digit, 256) }},
	{New: func() any { return make([]Digit, 1024) }},
	{New: func() any { return make([]Digit, 4096) }},
	{New: func() any { return make([]Digit, 16384) }},
	{New: func() any { return make([]Digit, 65536) }},
}

// scratchSizes defines the size classes for the scratch pools.
var scratchSizes = [...]int{16, 64, 256, 1024, 4096, 16384, 65536}

// scratchPoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
//
// Size classes are powers of 4 starting at 4^2, so index i holds 4^(i+2)
// digits and bits.Len(size-1) maps directly to the index.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 3) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// scratchPoolIndexLinear is the linear search equivalent of scratchPoolIndex,
// used to check the bitwise version.
func scratchPoolIndexLinear(size int) int {
	for i, s := range scratchSizes {
		if size <= s {
			return i
		}
	}
	return -1
}

// AcquireUninitialized returns a scratch vector of exactly size digits with
// unspecified contents. Use it only when every element is written before it
// is read, and release it with defer:
//
//	buf := arith.AcquireUninitialized(n)
//	defer arith.Release(buf)
func AcquireUninitialized(size int) []Digit {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make([]Digit, size)
	}
	buf := scratchPools[idx].Get().([]Digit)
	return buf[:size]
}

// Release returns a scratch vector to its pool. Vectors whose capacity is not
// an exact size class (including oversized direct allocations) are dropped.
// Release(nil) is a no-op.
func Release(buf []Digit) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(buf[:c])
	}
}
