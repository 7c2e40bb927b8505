package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/longdiv/internal/cli"
	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/logging"
	"github.com/agbru/longdiv/internal/metrics"
	"github.com/agbru/longdiv/internal/orchestration"
	"github.com/agbru/longdiv/internal/selftest"
	"github.com/agbru/longdiv/internal/ui"
)

// runSelftest checks the case table, plus any random cases, against the
// selected strategies concurrently.
func (a *Application) runSelftest(ctx context.Context, out io.Writer) int {
	strategies := orchestration.GetStrategiesToRun(a.Config.Strategy, a.Registry)
	if len(strategies) == 0 {
		return cli.CLIResultPresenter{}.HandleError(
			apperrors.NewConfigError("no strategy matches %q", a.Config.Strategy), 0, a.ErrWriter)
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewDivisionCollector(reg)
	if err != nil {
		a.logger.Error("registering metrics", err)
		return apperrors.ExitErrorGeneric
	}

	cases := append(selftest.Cases(), selftest.RandomCases(a.Config.Seed, a.Config.Random)...)
	harness := selftest.NewHarness(cases,
		selftest.WithLoops(a.Config.Loops),
		selftest.WithObserver(collector),
		selftest.WithLogger(a.logger))
	tally := selftest.NewTally(selftest.DefaultSampleLimit)

	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name()
	}
	a.logger.Info("self-test starting",
		logging.Int("cases", harness.Cases()),
		logging.Int("loops", harness.Loops()),
		logging.Uint64("seed", a.Config.Seed),
		logging.String("strategies", strings.Join(names, ",")))

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	presentOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		presentOut = io.Discard
	} else {
		fmt.Fprintf(out, "Self-test: %s%d%s cases x %s%d%s loop(s), strategies: %s%s%s\n",
			ui.ColorMagenta(), harness.Cases(), ui.ColorReset(),
			ui.ColorMagenta(), harness.Loops(), ui.ColorReset(),
			ui.ColorBlue(), strings.Join(names, ", "), ui.ColorReset())
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()

	results := orchestration.ExecuteSelftests(ctx, harness, strategies, tally, reporter, presentOut)
	presenter := cli.CLIResultPresenter{}
	code := orchestration.AnalyzeSelftestResults(results, tally, a.Config.Timeout, presenter, presenter, presentOut)
	a.logger.Info("self-test finished",
		logging.Int("failures", tally.Count()),
		logging.Int("exit_code", code))

	if a.Config.Quiet {
		fmt.Fprintln(out, quietStatus(code, tally.Count()))
	}
	if a.Config.Verbose {
		cli.DisplayDivisionStats(collector.Summary(), out)
		cli.DisplayMemoryStats(mem.Snapshot().Since(before), out)
	}

	if a.Config.MetricsFile != "" {
		if err := metrics.WriteTextfile(a.Config.MetricsFile, reg); err != nil {
			err = apperrors.WrapError(err, "writing metrics file %s", a.Config.MetricsFile)
			a.logger.Error("metrics not written", err)
			if code == apperrors.ExitSuccess {
				code = presenter.HandleError(err, 0, a.ErrWriter)
			}
		}
	}
	return code
}

func quietStatus(code, failures int) string {
	switch code {
	case apperrors.ExitSuccess:
		return "PASS"
	case apperrors.ExitErrorMismatch:
		return fmt.Sprintf("FAIL %v", apperrors.MismatchError{Failures: failures})
	default:
		return fmt.Sprintf("ERROR exit %d", code)
	}
}
