package division

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/agbru/longdiv/internal/arith"
)

// digitsFromBytes packs little-endian bytes into digits, dropping a trailing
// partial digit.
func digitsFromBytes(b []byte) []arith.Digit {
	x := make([]arith.Digit, len(b)/4)
	for i := range x {
		x[i] = arith.Digit(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return x
}

// FuzzDivide checks every strategy against math/big on arbitrary operands.
func FuzzDivide(f *testing.F) {
	f.Add([]byte{3, 0, 0, 0}, []byte{2, 0, 0, 0})
	f.Add([]byte{0, 0, 0, 0, 0xfe, 0xff, 0, 0, 0, 0, 0, 0, 0, 0x80, 0, 0},
		[]byte{0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0x80, 0, 0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, []byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0x80}, []byte{1, 0, 0, 0, 0, 0, 0, 0x40})

	strategies := NewDefaultRegistry().GetAll()

	f.Fuzz(func(t *testing.T, ub, vb []byte) {
		u, v := digitsFromBytes(ub), digitsFromBytes(vb)
		if len(v) == 0 || len(u) < len(v) || v[len(v)-1] == 0 || len(u) > 64 {
			return
		}

		wantQ, wantR := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
		for _, s := range strategies {
			q, r, err := NewDivider(WithStrategy(s)).DivMod(u, v)
			if err != nil {
				t.Fatalf("%s: DivMod(%x, %x): %v", s.Name(), u, v, err)
			}
			if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
				t.Errorf("%s: u=%x v=%x got q=%x r=%x, want q=%s r=%s",
					s.Name(), u, v, q, r, wantQ.Text(16), wantR.Text(16))
			}
		}
	})
}
