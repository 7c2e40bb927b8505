// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayDivision], [DisplayProgress], [DisplayMemoryStats].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietDivision].

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/diag"
	"github.com/agbru/longdiv/internal/format"
	"github.com/agbru/longdiv/internal/ui"
)

// DivisionOutput is the outcome of a single divide-mode run. R is nil when
// the remainder was not requested.
type DivisionOutput struct {
	Strategy string
	U, V     []arith.Digit
	Q, R     []arith.Digit
	Duration time.Duration
}

// DisplayDivision prints the operands and results as hexadecimal digit
// dumps, most significant digit first.
func DisplayDivision(res DivisionOutput, out io.Writer) {
	fmt.Fprintf(out, "\n%sDivision (%s)%s in %s%s%s\n",
		ui.ColorBold(), res.Strategy, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(out, "  %s (%d digits)\n", diag.Format("dividend u =", res.U), len(res.U))
	fmt.Fprintf(out, "  %s (%d digits)\n", diag.Format("divisor  v =", res.V), len(res.V))
	fmt.Fprintf(out, "  %s%s%s\n", ui.ColorGreen(), diag.Format("quotient   =", res.Q), ui.ColorReset())
	if res.R != nil {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorGreen(), diag.Format("remainder  =", res.R), ui.ColorReset())
	}
}

// FormatQuietDivision returns the quotient and, if present, the remainder on
// one line each, without labels, in the form diag.Parse accepts.
func FormatQuietDivision(res DivisionOutput) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(diag.Format("", res.Q)))
	b.WriteByte('\n')
	if res.R != nil {
		b.WriteString(strings.TrimSpace(diag.Format("", res.R)))
		b.WriteByte('\n')
	}
	return b.String()
}

// DisplayQuietDivision writes FormatQuietDivision(res) to out.
func DisplayQuietDivision(res DivisionOutput, out io.Writer) {
	fmt.Fprint(out, FormatQuietDivision(res))
}
