package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/agbru/longdiv/internal/arith"
	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/metrics"
	"github.com/agbru/longdiv/internal/selftest"
)

func TestCLIResultPresenter_PresentSummary(t *testing.T) {
	var out bytes.Buffer
	CLIResultPresenter{}.PresentSummary([]selftest.Result{
		{Strategy: "direct", Checks: 12345, Duration: 2 * time.Millisecond},
		{Strategy: "complement", Checks: 10, Failures: 2},
		{Strategy: "split", Checks: 3, Err: context.Canceled},
	}, &out)

	got := out.String()
	for _, want := range []string{
		"Strategy", "Checks", "Failures", "Duration", "Status",
		"12,345", "2ms", "< 1µs",
		"[OK]", "[FAIL]", "[STOPPED] context canceled",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	// Header and rows share the same column start for Status.
	header := lines[1]
	col := strings.Index(header, "Status")
	for _, row := range lines[2:] {
		if idx := utf8.RuneCountInString(row[:strings.Index(row, "[")]); idx != col {
			t.Errorf("status column at %d, want %d in %q", idx, col, row)
		}
	}
}

func TestCLIResultPresenter_PresentFailures(t *testing.T) {
	f := selftest.Failure{
		Strategy: "direct",
		Case: selftest.Case{
			Name: "2x1/1",
			U:    []arith.Digit{3, 0},
			V:    []arith.Digit{2},
			Q:    []arith.Digit{1, 0},
			R:    []arith.Digit{1},
		},
		Kind: selftest.QuotientMismatch,
		Got:  []arith.Digit{2, 0},
	}
	var out bytes.Buffer
	CLIResultPresenter{}.PresentFailures([]selftest.Failure{f}, 3, &out)

	got := out.String()
	for _, want := range []string{"Failures (3)", "strategy direct, case 2x1/1", "quotient =", "2 more failure(s) not shown"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "Timed out after"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "Canceled after"},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &out); code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.want)
			}
		})
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	var out bytes.Buffer
	DisplayMemoryStats(metrics.MemoryDelta{PeakHeap: 2048, Allocated: 1 << 20, Mallocs: 1500, NumGC: 3, PauseTotalNs: 2_500_000}, &out)
	got := out.String()
	for _, want := range []string{"2.0 KiB", "1.0 MiB", "1,500", "GC cycles:       3", "2.50ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDisplayDivisionStats(t *testing.T) {
	var out bytes.Buffer
	DisplayDivisionStats(metrics.Summary{SingleDigit: 1200, General: 7, AddBacks: 1}, &out)
	got := out.String()
	for _, want := range []string{"Single digit:     1,200", "General:          7", "Add-backs:        1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
