package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/division"
)

func newTestCollector(t *testing.T) (*DivisionCollector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c, err := NewDivisionCollector(reg)
	if err != nil {
		t.Fatalf("NewDivisionCollector: %v", err)
	}
	return c, reg
}

func TestDivisionCollector_ObservesDivider(t *testing.T) {
	t.Parallel()
	c, _ := newTestCollector(t)
	d := division.NewDivider(division.WithObserver(c))

	// Single digit, general with one add-back and one overflow, rejection.
	_, _, _ = d.DivMod([]arith.Digit{7, 7}, []arith.Digit{2})
	_, _, _ = d.DivMod([]arith.Digit{0, 0xFFFE, 0, 0x8000}, []arith.Digit{0xFFFF, 0, 0x8000})
	_, _, _ = d.DivMod([]arith.Digit{1}, []arith.Digit{1, 1})

	if got := testutil.ToFloat64(c.divisions.WithLabelValues("single_digit")); got != 1 {
		t.Errorf("single_digit divisions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.divisions.WithLabelValues("general")); got != 1 {
		t.Errorf("general divisions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.rejections.WithLabelValues("dividend_shorter_than_divisor")); got != 1 {
		t.Errorf("rejections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.addBacks); got != 1 {
		t.Errorf("add_backs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.overflows); got != 1 {
		t.Errorf("overflows = %v, want 1", got)
	}

	s := c.Summary()
	if s.SingleDigit != 1 || s.General != 1 || s.Rejected != 1 || s.AddBacks != 1 || s.Overflows != 1 {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestDivisionCollector_DuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	if _, err := NewDivisionCollector(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewDivisionCollector(reg); err == nil {
		t.Error("second registration on the same registry succeeded")
	}
}

func TestDivisionCollector_Exposition(t *testing.T) {
	t.Parallel()
	c, reg := newTestCollector(t)
	c.ObserveDivision(division.Event{Path: division.PathGeneral, M: 4, N: 3, Refinements: 2})

	expected := `
# HELP longdiv_quotient_refinements_total Quotient digit estimates decremented by the third-digit test.
# TYPE longdiv_quotient_refinements_total counter
longdiv_quotient_refinements_total 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "longdiv_quotient_refinements_total"); err != nil {
		t.Error(err)
	}
	if n := testutil.CollectAndCount(c.operandSize); n != 2 {
		t.Errorf("operand histogram series = %d, want 2", n)
	}
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	c, reg := newTestCollector(t)
	c.ObserveDivision(division.Event{Path: division.PathSingleDigit, M: 1, N: 1})

	path := filepath.Join(t.TempDir(), "longdiv.txt")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	if _, err := os.Stat(path + ".prom"); !os.IsNotExist(err) {
		t.Errorf("unexpected %s.prom written: %v", path, err)
	}
	if !strings.Contains(string(data), `longdiv_divisions_total{path="single_digit"} 1`) {
		t.Errorf("textfile missing division counter:\n%s", data)
	}
}
