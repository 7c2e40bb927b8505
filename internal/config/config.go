// Package config builds the application configuration from command-line
// flags and LONGDIV_ environment variables.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/logging"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "LONGDIV_"

// Mode selects the sub-command.
type Mode string

const (
	// ModeSelftest runs the case table against the selected strategies.
	ModeSelftest Mode = "selftest"
	// ModeDivide divides the operands given on the command line.
	ModeDivide Mode = "divide"
)

// Defaults.
const (
	DefaultLoops    = 1
	DefaultTimeout  = 5 * time.Minute
	DefaultLogLevel = "warn"
	// StrategyAll selects every registered strategy.
	StrategyAll = "all"
)

// AppConfig is the fully resolved application configuration.
type AppConfig struct {
	Mode Mode
	// Strategy is a registered strategy name or StrategyAll.
	Strategy string
	// Loops repeats the case table.
	Loops int
	// Random adds that many generated cases checked against math/big.
	Random int
	// Seed drives the random case generator.
	Seed    uint64
	Timeout time.Duration

	Quiet   bool
	Verbose bool
	NoColor bool

	// MetricsFile, if set, receives the Prometheus text exposition at exit.
	MetricsFile string
	LogLevel    string

	// Dividend and Divisor are hexadecimal digit groups, most significant
	// first (divide mode).
	Dividend    string
	Divisor     string
	NoRemainder bool
}

// ParseConfig parses args (without the program name). The first argument
// may name the mode; without it the mode is selftest. Environment variables
// apply to every flag not set explicitly. Usage and parse errors are written
// to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableStrategies []string) (AppConfig, error) {
	cfg := AppConfig{Mode: ModeSelftest}
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cfg.Mode = Mode(args[0])
		args = args[1:]
	}

	fs := flag.NewFlagSet(programName+" "+string(cfg.Mode), flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [selftest|divide] [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Flags (each also read from %s<NAME> when not given):\n", EnvPrefix)
		fs.PrintDefaults()
	}

	strategies := strings.Join(append([]string{StrategyAll}, availableStrategies...), ", ")
	fs.StringVar(&cfg.Strategy, "strategy", DefaultStrategy(), "multiply-subtract strategy ("+strategies+")")
	fs.IntVar(&cfg.Loops, "loops", DefaultLoops, "number of passes over the case table")
	fs.IntVar(&cfg.Random, "random", 0, "number of random cases checked against math/big")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "seed for random cases")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run time")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only results")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print division statistics and memory usage")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit (name it *.prom for node_exporter)")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "log level (debug, info, warn, error, disabled)")
	fs.StringVar(&cfg.Dividend, "u", "", "dividend as hex digit groups, most significant first")
	fs.StringVar(&cfg.Divisor, "v", "", "divisor as hex digit groups, most significant first")
	fs.BoolVar(&cfg.NoRemainder, "no-remainder", false, "skip the remainder (divide mode)")
	// -version is handled before parsing; it is declared so it shows in usage.
	fs.Bool("version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableStrategies); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate(availableStrategies []string) error {
	switch c.Mode {
	case ModeSelftest, ModeDivide:
	default:
		return apperrors.NewConfigError("unknown mode %q (want selftest or divide)", c.Mode)
	}
	if c.Strategy != StrategyAll && !slices.Contains(availableStrategies, c.Strategy) {
		return apperrors.NewConfigError("unknown strategy %q (available: %s, all)", c.Strategy, strings.Join(availableStrategies, ", "))
	}
	if c.Loops < 1 {
		return apperrors.NewConfigError("loops must be at least 1, got %d", c.Loops)
	}
	if c.Random < 0 {
		return apperrors.NewConfigError("random must not be negative, got %d", c.Random)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Mode == ModeDivide {
		if c.Dividend == "" || c.Divisor == "" {
			return apperrors.NewConfigError("divide requires -u and -v")
		}
		if c.Strategy == StrategyAll {
			return apperrors.NewConfigError("divide needs a single strategy, not %q", StrategyAll)
		}
	}
	return nil
}
