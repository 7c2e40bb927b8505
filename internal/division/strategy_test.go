package division

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	"github.com/agbru/longdiv/internal/arith"
)

// referenceMulSub computes window - qhat*vn with math/big and reports the
// expected window digits and borrow.
func referenceMulSub(qhat D, vn, window []D) ([]D, bool) {
	diff := new(big.Int).Sub(toBig(window), new(big.Int).Mul(toBig(vn), new(big.Int).SetUint64(uint64(qhat))))
	borrow := diff.Sign() < 0
	if borrow {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(arith.DigitBits*len(window)))
		diff.Add(diff, mod)
	}
	want := make([]D, len(window))
	mask := new(big.Int).SetUint64(uint64(arith.MaxDigit))
	for i := range want {
		want[i] = D(new(big.Int).And(diff, mask).Uint64())
		diff.Rsh(diff, arith.DigitBits)
	}
	return want, borrow
}

func TestStrategies_MulSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		qhat   D
		vn     []D
		window []D
	}{
		{"zero qhat", 0, []D{0x80000000, 0x80000000}, []D{1, 2, 3}},
		{"exact", 2, []D{0x1, 0x80000000}, []D{0x2, 0, 1}},
		{"borrow out", 1, []D{0xFFFF0000, 0, 0x80000000}, []D{0xFFFE0000, 0, 0x80000000, 0}},
		{"maximal qhat", arith.MaxDigit, []D{0xFFFF0000, 0, 0x80000000}, []D{0, 0xFFFE0000, 0, 0x80000000}},
		{"maximal digits", arith.MaxDigit, []D{arith.MaxDigit, arith.MaxDigit}, []D{arith.MaxDigit, arith.MaxDigit, arith.MaxDigit}},
		{"large borrow chain", arith.MaxDigit, []D{arith.MaxDigit, arith.MaxDigit, arith.MaxDigit}, []D{0, 0, 0, 0}},
	}

	for _, s := range NewDefaultRegistry().GetAll() {
		for _, tt := range tests {
			t.Run(s.Name()+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				want, wantBorrow := referenceMulSub(tt.qhat, tt.vn, tt.window)
				window := slices.Clone(tt.window)
				borrow := s.MulSub(tt.qhat, tt.vn, window)
				if !slices.Equal(window, want) || borrow != wantBorrow {
					t.Errorf("MulSub = %x borrow %v, want %x borrow %v", window, borrow, want, wantBorrow)
				}
			})
		}
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default lists every strategy sorted", func(t *testing.T) {
		t.Parallel()
		want := []string{"complement", "direct", "signed", "split", "twopass"}
		if got := NewDefaultRegistry().List(); !slices.Equal(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})

	t.Run("get unknown", func(t *testing.T) {
		t.Parallel()
		_, err := NewDefaultRegistry().Get("nope")
		if !errors.Is(err, ErrUnknownStrategy) {
			t.Errorf("Get error = %v, want ErrUnknownStrategy", err)
		}
	})

	t.Run("duplicate register", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		if err := r.Register(DirectStrategy{}); err != nil {
			t.Fatalf("first Register: %v", err)
		}
		if err := r.Register(DirectStrategy{}); err == nil {
			t.Error("second Register succeeded, want error")
		}
	})

	t.Run("select", func(t *testing.T) {
		t.Parallel()
		r := NewDefaultRegistry()
		all, err := r.Select("all")
		if err != nil || len(all) != 5 {
			t.Fatalf("Select(all) = %d strategies, %v", len(all), err)
		}
		one, err := r.Select("split")
		if err != nil || len(one) != 1 || one[0].Name() != "split" {
			t.Fatalf("Select(split) = %v, %v", one, err)
		}
		if _, err := r.Select("bogus"); err == nil {
			t.Error("Select(bogus) succeeded, want error")
		}
	})
}
