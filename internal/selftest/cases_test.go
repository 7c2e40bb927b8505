package selftest

import (
	"math/big"
	"slices"
	"testing"
)

func TestCases_Consistent(t *testing.T) {
	t.Parallel()
	rejected := 0
	for _, c := range Cases() {
		if c.WantErr != nil {
			rejected++
			continue
		}
		m, n := len(c.U), len(c.V)
		if len(c.Q) != m-n+1 || len(c.R) != n {
			t.Errorf("%s: result lengths (%d, %d), want (%d, %d)", c.Name, len(c.Q), len(c.R), m-n+1, n)
			continue
		}
		prod := new(big.Int).Mul(toBig(c.Q), toBig(c.V))
		if prod.Add(prod, toBig(c.R)).Cmp(toBig(c.U)) != 0 || toBig(c.R).Cmp(toBig(c.V)) >= 0 {
			t.Errorf("%s: table entry is not a valid division", c.Name)
		}
	}
	if rejected != 3 {
		t.Errorf("table has %d rejected entries, want 3", rejected)
	}
}

func TestCases_UniqueNames(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, c := range Cases() {
		if seen[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestRandomCases(t *testing.T) {
	t.Parallel()
	a, b := RandomCases(42, 20), RandomCases(42, 20)
	if len(a) != 20 {
		t.Fatalf("got %d cases, want 20", len(a))
	}
	for i := range a {
		if !slices.Equal(a[i].U, b[i].U) || !slices.Equal(a[i].V, b[i].V) {
			t.Fatalf("case %d differs between runs with the same seed", i)
		}
		c := a[i]
		if c.V[len(c.V)-1] == 0 || len(c.U) < len(c.V) || len(c.U) > MaxRandomDigits {
			t.Errorf("%s: invalid operands m=%d n=%d", c.Name, len(c.U), len(c.V))
		}
	}
}
