package selftest

import (
	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/division"
)

// Case is one entry of the self-test table. Either WantErr is set and the
// division must be rejected with it, or Q and R hold the exact quotient
// (m-n+1 digits) and remainder (n digits).
type Case struct {
	Name    string
	U, V    []arith.Digit
	Q, R    []arith.Digit
	WantErr error
}

type digits = []arith.Digit

// Cases returns the built-in table: three rejected parameter sets followed
// by hand-picked divisions that exercise the single-digit path, normalization
// shifts, quotient overflow, qhat refinement and the add-back correction. The
// returned slice is freshly allocated and may be modified by the caller.
func Cases() []Case {
	return []Case{
		{Name: "1x1 rejected", U: digits{3}, V: digits{0}, WantErr: division.ErrUnnormalizedDivisor},
		{Name: "1x2 rejected", U: digits{7}, V: digits{1, 3}, WantErr: division.ErrDividendShorterThanDivisor},
		{Name: "2x2 rejected", U: digits{0, 0}, V: digits{1, 0}, WantErr: division.ErrUnnormalizedDivisor},
		{Name: "1x1/1", U: digits{3}, V: digits{2}, Q: digits{1}, R: digits{1}},
		{Name: "1x1/2", U: digits{3}, V: digits{3}, Q: digits{1}, R: digits{0}},
		{Name: "1x1/3", U: digits{3}, V: digits{4}, Q: digits{0}, R: digits{3}},
		{Name: "1x1/4", U: digits{0}, V: digits{0xffffffff}, Q: digits{0}, R: digits{0}},
		{Name: "1x1/5", U: digits{0xffffffff}, V: digits{1}, Q: digits{0xffffffff}, R: digits{0}},
		{Name: "1x1/6", U: digits{0xffffffff}, V: digits{0xffffffff}, Q: digits{1}, R: digits{0}},
		{Name: "1x1/7", U: digits{0xffffffff}, V: digits{3}, Q: digits{0x55555555}, R: digits{0}},
		{Name: "2x1/1", U: digits{0xffffffff, 0xffffffff}, V: digits{1}, Q: digits{0xffffffff, 0xffffffff}, R: digits{0}},
		{Name: "2x1/2", U: digits{0xffffffff, 0xffffffff}, V: digits{0xffffffff}, Q: digits{1, 1}, R: digits{0}},
		{Name: "2x1/3", U: digits{0xffffffff, 0xfffffffe}, V: digits{0xffffffff}, Q: digits{0xffffffff, 0}, R: digits{0xfffffffe}},
		{Name: "2x1/4", U: digits{0x00005678, 0x00001234}, V: digits{0x00009abc}, Q: digits{0x1e1dba76, 0}, R: digits{0x00006bd0}},
		{Name: "2x2/1", U: digits{0, 0}, V: digits{0, 1}, Q: digits{0}, R: digits{0, 0}},
		{Name: "2x2/2", U: digits{0, 7}, V: digits{0, 3}, Q: digits{2}, R: digits{0, 1}},
		{Name: "2x2/3", U: digits{5, 7}, V: digits{0, 3}, Q: digits{2}, R: digits{5, 1}},
		{Name: "2x2/4", U: digits{0, 6}, V: digits{0, 2}, Q: digits{3}, R: digits{0, 0}},
		{Name: "1x1/8", U: digits{0x80000000}, V: digits{0x40000001}, Q: digits{1}, R: digits{0x3fffffff}},
		{Name: "2x1/5", U: digits{0, 0x80000000}, V: digits{0x40000001}, Q: digits{0xfffffff8, 1}, R: digits{8}},
		{Name: "2x2/5", U: digits{0, 0x80000000}, V: digits{1, 0x40000000}, Q: digits{1}, R: digits{0xffffffff, 0x3fffffff}},
		{Name: "2x2/6", U: digits{0x0000789a, 0x0000bcde}, V: digits{0x0000789a, 0x0000bcde}, Q: digits{1}, R: digits{0, 0}},
		{Name: "2x2/7", U: digits{0x0000789b, 0x0000bcde}, V: digits{0x0000789a, 0x0000bcde}, Q: digits{1}, R: digits{1, 0}},
		{Name: "2x2/8", U: digits{0x00007899, 0x0000bcde}, V: digits{0x0000789a, 0x0000bcde}, Q: digits{0}, R: digits{0x00007899, 0x0000bcde}},
		{Name: "2x2/9", U: digits{0x0000ffff, 0x0000ffff}, V: digits{0x0000ffff, 0x0000ffff}, Q: digits{1}, R: digits{0, 0}},
		{Name: "2x2/10", U: digits{0x0000ffff, 0x0000ffff}, V: digits{0, 1}, Q: digits{0x0000ffff}, R: digits{0x0000ffff, 0}},
		{Name: "3x2/1", U: digits{0x000089ab, 0x00004567, 0x00000123}, V: digits{0, 1}, Q: digits{0x00004567, 0x00000123}, R: digits{0x000089ab, 0}},
		{Name: "3x2/2", U: digits{0, 0x0000fffe, 0x00008000}, V: digits{0x0000ffff, 0x00008000}, Q: digits{0xffffffff, 0}, R: digits{0x0000ffff, 0x00007fff}},
		{Name: "3x3/1", U: digits{3, 0, 0x80000000}, V: digits{1, 0, 0x20000000}, Q: digits{3}, R: digits{0, 0, 0x20000000}},
		{Name: "3x3/2", U: digits{3, 0, 0x00008000}, V: digits{1, 0, 0x00002000}, Q: digits{3}, R: digits{0, 0, 0x00002000}},
		{Name: "4x3/1", U: digits{0, 0, 0x00008000, 0x00007fff}, V: digits{1, 0, 0x00008000}, Q: digits{0xfffe0000, 0}, R: digits{0x00020000, 0xffffffff, 0x00007fff}},
		{Name: "4x3/2", U: digits{0, 0x0000fffe, 0, 0x00008000}, V: digits{0x0000ffff, 0, 0x00008000}, Q: digits{0xffffffff, 0}, R: digits{0x0000ffff, 0xffffffff, 0x00007fff}},
		{Name: "4x3/3", U: digits{0, 0xfffffffe, 0, 0x80000000}, V: digits{0x0000ffff, 0, 0x80000000}, Q: digits{0, 1}, R: digits{0, 0xfffeffff, 0}},
		{Name: "4x3/4", U: digits{0, 0xfffffffe, 0, 0x80000000}, V: digits{0xffffffff, 0, 0x80000000}, Q: digits{0xffffffff, 0}, R: digits{0xffffffff, 0xffffffff, 0x7fffffff}},
	}
}
