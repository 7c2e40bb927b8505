// Package diag renders digit vectors for diagnostics and parses them back.
//
// The textual form lists digits most significant first, each as a space
// followed by eight upper-case hexadecimal characters:
//
//	dividend u = 80000000 00000000 FFFFFFFE 00000000
package diag

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/longdiv/internal/arith"
)

// ErrEmpty is returned by Parse when the input holds no digit group.
var ErrEmpty = errors.New("no digits")

// Format returns label followed by every digit, most significant first.
func Format(label string, digits []arith.Digit) string {
	var b strings.Builder
	b.Grow(len(label) + 9*len(digits))
	b.WriteString(label)
	for i := len(digits) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, " %08X", uint32(digits[i]))
	}
	return b.String()
}

// Dump writes Format(label, digits) and a newline to w.
func Dump(w io.Writer, label string, digits []arith.Digit) error {
	_, err := fmt.Fprintln(w, Format(label, digits))
	return err
}

// Parse reads whitespace- or comma-separated hexadecimal groups, most
// significant first, and returns them as a little-endian digit vector. Each
// group may carry a 0x prefix and must fit in one digit.
func Parse(s string) ([]arith.Digit, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, ErrEmpty
	}
	digits := make([]arith.Digit, len(fields))
	for i, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		d, err := strconv.ParseUint(f, 16, arith.DigitBits)
		if err != nil {
			return nil, fmt.Errorf("digit group %d %q: %w", i+1, fields[i], err)
		}
		digits[len(fields)-1-i] = arith.Digit(d)
	}
	return digits, nil
}
