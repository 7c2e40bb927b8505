package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/agbru/longdiv/internal/division"
)

type plainColors struct{}

func (plainColors) Red() string    { return "<red>" }
func (plainColors) Yellow() string { return "<yellow>" }
func (plainColors) Reset() string  { return "</>" }

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("unknown strategy %q", "fast"), `unknown strategy "fast"`},
		{"validation", ValidationError{Field: "v", Message: "top digit is zero"}, `validation error for "v": top digit is zero`},
		{"division", DivisionError{Strategy: "split", Cause: errors.New("boom")}, `division with strategy "split" failed: boom`},
		{"mismatch single", MismatchError{Strategy: "signed", Failures: 2}, `2 self-test check(s) failed for strategy "signed"`},
		{"mismatch total", MismatchError{Failures: 5}, "5 self-test check(s) failed"},
		{"timeout", TimeoutError{Operation: "selftest", Limit: time.Second}, `operation "selftest" timed out after 1s`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrapChains(t *testing.T) {
	t.Parallel()
	paramErr := &division.ParameterError{Err: division.ErrUnnormalizedDivisor, M: 2, N: 2}

	var divErr error = DivisionError{Strategy: "direct", Cause: paramErr}
	if !errors.Is(divErr, division.ErrUnnormalizedDivisor) {
		t.Error("DivisionError does not unwrap to the division sentinel")
	}
	var pe *division.ParameterError
	if !errors.As(divErr, &pe) || pe.N != 2 {
		t.Error("errors.As cannot reach the ParameterError")
	}

	valErr := ValidationError{Field: "u", Message: "bad hex", Cause: paramErr}
	if !errors.Is(valErr, division.ErrUnnormalizedDivisor) {
		t.Error("ValidationError does not unwrap its cause")
	}

	if !errors.Is(TimeoutError{Operation: "divide"}, context.DeadlineExceeded) {
		t.Error("TimeoutError does not match context.DeadlineExceeded")
	}

	wrapped := fmt.Errorf("run: %w", MismatchError{Failures: 1})
	var me MismatchError
	if !errors.As(wrapped, &me) || me.Failures != 1 {
		t.Error("wrapped MismatchError not found with errors.As")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("bad digit")
	err := WrapError(base, "parsing -%s", "u")
	if err.Error() != "parsing -u: bad digit" || !errors.Is(err, base) {
		t.Errorf("WrapError = %v", err)
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{fmt.Errorf("run: %w", context.DeadlineExceeded), true},
		{TimeoutError{}, true},
		{errors.New("other"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsContextError(tt.err); got != tt.want {
			t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"timeout error", TimeoutError{Operation: "selftest"}, ExitErrorTimeout},
		{"canceled", fmt.Errorf("x: %w", context.Canceled), ExitErrorCanceled},
		{"mismatch", MismatchError{Failures: 1}, ExitErrorMismatch},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "v"}, ExitErrorConfig},
		{"division", DivisionError{Cause: errors.New("x")}, ExitErrorGeneric},
		{"other", errors.New("x"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"success", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "<yellow>Timed out after 2s"},
		{"canceled", context.Canceled, ExitErrorCanceled, "<yellow>Canceled after 2s."},
		{"config", NewConfigError("bad strategy"), ExitErrorConfig, "<red>Error: bad strategy</>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleError(tt.err, 2*time.Second, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantOut == "" && buf.Len() != 0 {
				t.Errorf("unexpected output %q", buf.String())
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}

func TestExitCodeValues(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"success": ExitSuccess, "generic": ExitErrorGeneric, "timeout": ExitErrorTimeout,
		"mismatch": ExitErrorMismatch, "config": ExitErrorConfig, "canceled": ExitErrorCanceled,
	}
	want := map[string]int{"success": 0, "generic": 1, "timeout": 2, "mismatch": 3, "config": 4, "canceled": 130}
	for k, v := range want {
		if codes[k] != v {
			t.Errorf("%s exit code = %d, want %d", k, codes[k], v)
		}
	}
}
