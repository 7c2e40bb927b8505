// Package app wires configuration, logging, the division strategies and the
// presentation layer into the longdiv command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/longdiv/internal/config"
	"github.com/agbru/longdiv/internal/division"
	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/logging"
	"github.com/agbru/longdiv/internal/ui"
)

// Application represents the longdiv application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *division.Registry
	ErrWriter io.Writer

	logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets the strategy registry, replacing the built-in one.
func WithRegistry(r *division.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = division.NewDefaultRegistry()
	}

	programName := "longdiv"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	// Validated by config.ParseConfig.
	level, _ := logging.ParseLevel(a.Config.LogLevel)
	a.logger = logging.NewConsoleLogger(a.ErrWriter, level, a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.logger.Debug("starting",
		logging.String("mode", string(a.Config.Mode)),
		logging.String("strategy", a.Config.Strategy),
		logging.Duration("timeout", a.Config.Timeout))

	switch a.Config.Mode {
	case config.ModeDivide:
		return a.runDivide(ctx, out)
	default:
		return a.runSelftest(ctx, out)
	}
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForParseError maps an error returned by New to an exit code.
func ExitCodeForParseError(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
