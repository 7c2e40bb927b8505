package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/format"
	"github.com/agbru/longdiv/internal/metrics"
	"github.com/agbru/longdiv/internal/orchestration"
	"github.com/agbru/longdiv/internal/progress"
	"github.com/agbru/longdiv/internal/selftest"
	"github.com/agbru/longdiv/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to the package-level DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numStrategies int, out io.Writer) {
	DisplayProgress(wg, progressChan, numStrategies, out)
}

// CLIResultPresenter renders self-test results as a colourized table.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentSummary prints one row per strategy: checks run, failures,
// duration and a status badge. Padding is computed on the plain text so
// ANSI sequences do not break the alignment.
func (CLIResultPresenter) PresentSummary(results []selftest.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Self-test Summary ---\n")

	headers := [...]string{"Strategy", "Checks", "Failures", "Duration"}
	widths := [len(headers)]int{}
	for i, h := range headers {
		widths[i] = len(h)
	}
	rows := make([][len(headers)]string, len(results))
	for i, res := range results {
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		rows[i] = [len(headers)]string{
			res.Strategy,
			format.FormatNumberString(strconv.Itoa(res.Checks)),
			format.FormatNumberString(strconv.Itoa(res.Failures)),
			duration,
		}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], len([]rune(cell)))
		}
	}

	for i, h := range headers {
		fmt.Fprintf(out, "%s%s%s%s   ", ui.ColorUnderline(), h, ui.ColorReset(), padRight("", widths[i]-len(h)))
	}
	fmt.Fprintf(out, "%sStatus%s\n", ui.ColorUnderline(), ui.ColorReset())

	for i, res := range results {
		row := rows[i]
		colors := [len(headers)]string{ui.ColorBlue(), "", failureColor(res.Failures), ui.ColorYellow()}
		for j, cell := range row {
			fmt.Fprintf(out, "%s%s%s%s   ", colors[j], cell, ui.ColorReset(), padRight("", widths[j]-len([]rune(cell))))
		}
		fmt.Fprintln(out, statusBadge(res))
	}
}

func failureColor(failures int) string {
	if failures > 0 {
		return ui.ColorRed()
	}
	return ui.ColorGreen()
}

func statusBadge(res selftest.Result) string {
	switch {
	case res.Err != nil:
		return ui.Badge(ui.BadgeNeutral, "STOPPED") + " " + res.Err.Error()
	case res.Failures > 0:
		return ui.Badge(ui.BadgeFailure, "FAIL")
	default:
		return ui.Badge(ui.BadgeSuccess, "OK")
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentFailures dumps each kept failure sample and notes how many were
// omitted.
func (CLIResultPresenter) PresentFailures(samples []selftest.Failure, total int, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Failures (%d) ---%s\n", ui.ColorRed(), total, ui.ColorReset())
	for _, f := range samples {
		fmt.Fprintf(out, "%sstrategy %s, case %s, %s%s\n", ui.ColorBold(), f.Strategy, f.Case.Name, f.Kind, ui.ColorReset())
		_ = f.Dump(out)
	}
	if omitted := total - len(samples); omitted > 0 {
		fmt.Fprintf(out, "%s... %d more failure(s) not shown%s\n", ui.ColorGrey(), omitted, ui.ColorReset())
	}
}

// HandleError prints err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies theme colours to apperrors.HandleError.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// DisplayMemoryStats shows the allocation activity of a run.
func DisplayMemoryStats(delta metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(delta.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.Allocated))
	fmt.Fprintf(out, "  Allocations:     %s\n", format.FormatNumberString(strconv.FormatUint(delta.Mallocs, 10)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}

// DisplayDivisionStats shows how the divisions of a run were served.
func DisplayDivisionStats(s metrics.Summary, out io.Writer) {
	fmt.Fprintf(out, "\nDivision Stats:\n")
	for _, row := range []struct {
		label string
		value uint64
	}{
		{"Single digit:", s.SingleDigit},
		{"General:", s.General},
		{"Rejected:", s.Rejected},
		{"qhat overflows:", s.Overflows},
		{"qhat refinements:", s.Refinements},
		{"Add-backs:", s.AddBacks},
	} {
		fmt.Fprintf(out, "  %-18s%s\n", row.label, format.FormatNumberString(strconv.FormatUint(row.value, 10)))
	}
}
