package selftest

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/agbru/longdiv/internal/arith"
)

// MaxRandomDigits bounds the dividend length of generated cases.
const MaxRandomDigits = 24

var extremeDigits = []arith.Digit{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFE, 0xFFFFFFFF}

// RandomCases returns count valid cases generated from seed, with expected
// results computed by math/big. A quarter of the digits are drawn from
// boundary values to reach the overflow and add-back branches often.
func RandomCases(seed uint64, count int) []Case {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	cases := make([]Case, 0, count)
	for i := 0; i < count; i++ {
		n := 1 + rng.IntN(MaxRandomDigits/2)
		m := n + rng.IntN(MaxRandomDigits-n+1)
		u := randomDigits(rng, m)
		v := randomDigits(rng, n)
		if v[n-1] == 0 {
			v[n-1] = 1 + arith.Digit(rng.Uint32N(uint32(arith.MaxDigit)))
		}
		q, r := expected(u, v)
		cases = append(cases, Case{
			Name: fmt.Sprintf("random/%d/%dx%d", i, m, n),
			U:    u, V: v, Q: q, R: r,
		})
	}
	return cases
}

func randomDigits(rng *rand.Rand, length int) []arith.Digit {
	x := make([]arith.Digit, length)
	for i := range x {
		if rng.IntN(4) == 0 {
			x[i] = extremeDigits[rng.IntN(len(extremeDigits))]
		} else {
			x[i] = arith.Digit(rng.Uint32())
		}
	}
	return x
}

// expected computes the quotient (m-n+1 digits) and remainder (n digits)
// of u / v with math/big.
func expected(u, v []arith.Digit) (q, r []arith.Digit) {
	bq, br := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
	return fromBig(bq, len(u)-len(v)+1), fromBig(br, len(v))
}

func toBig(x []arith.Digit) *big.Int {
	words := make([]byte, 4*len(x))
	for i, d := range x {
		j := 4 * (len(x) - 1 - i)
		words[j], words[j+1], words[j+2], words[j+3] = byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	}
	return new(big.Int).SetBytes(words)
}

func fromBig(z *big.Int, length int) []arith.Digit {
	x := make([]arith.Digit, length)
	mask := new(big.Int).SetUint64(uint64(arith.MaxDigit))
	t := new(big.Int).Set(z)
	for i := range x {
		x[i] = arith.Digit(new(big.Int).And(t, mask).Uint64())
		t.Rsh(t, arith.DigitBits)
	}
	return x
}
