package arith

import "testing"

func TestScratchPoolIndex_MatchesLinear(t *testing.T) {
	t.Parallel()
	sizes := []int{1, 2, 15, 16, 17, 63, 64, 65, 255, 256, 257, 1023, 1024, 1025, 4096, 16384, 65535, 65536, 65537}
	for _, size := range sizes {
		if got, want := scratchPoolIndex(size), scratchPoolIndexLinear(size); got != want {
			t.Errorf("scratchPoolIndex(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestAcquireUninitialized(t *testing.T) {
	t.Parallel()

	t.Run("returns exact length with class capacity", func(t *testing.T) {
		t.Parallel()
		buf := AcquireUninitialized(20)
		defer Release(buf)
		if len(buf) != 20 {
			t.Fatalf("len = %d, want 20", len(buf))
		}
		if c := cap(buf); c != scratchSizes[scratchPoolIndex(20)] {
			t.Errorf("cap = %d, want size class %d", c, scratchSizes[scratchPoolIndex(20)])
		}
	})

	t.Run("oversized allocation bypasses pool", func(t *testing.T) {
		t.Parallel()
		buf := AcquireUninitialized(scratchSizes[len(scratchSizes)-1] + 1)
		if len(buf) != scratchSizes[len(scratchSizes)-1]+1 {
			t.Errorf("len = %d", len(buf))
		}
		Release(buf)
	})

	t.Run("release nil and foreign slices", func(t *testing.T) {
		t.Parallel()
		Release(nil)
		Release(make([]Digit, 3, 17))
	})
}
