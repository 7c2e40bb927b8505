package division

import (
	"math/big"

	"github.com/agbru/longdiv/internal/arith"
)

// toBig converts a little-endian digit vector to a big.Int.
func toBig(x []arith.Digit) *big.Int {
	z := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		z.Lsh(z, arith.DigitBits)
		z.Or(z, new(big.Int).SetUint64(uint64(x[i])))
	}
	return z
}

// checkDivision reports whether q*v + r == u and r < v.
func checkDivision(u, v, q, r []arith.Digit) bool {
	bu, bv, bq, br := toBig(u), toBig(v), toBig(q), toBig(r)
	if br.Cmp(bv) >= 0 {
		return false
	}
	return new(big.Int).Add(new(big.Int).Mul(bq, bv), br).Cmp(bu) == 0
}

// recordingObserver keeps the last event it saw.
type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) ObserveDivision(ev Event) {
	o.events = append(o.events, ev)
}

func (o *recordingObserver) last() Event {
	return o.events[len(o.events)-1]
}
