package app

import (
	"context"
	"errors"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/longdiv/internal/arith"
	"github.com/agbru/longdiv/internal/cli"
	"github.com/agbru/longdiv/internal/diag"
	"github.com/agbru/longdiv/internal/division"
	apperrors "github.com/agbru/longdiv/internal/errors"
	"github.com/agbru/longdiv/internal/logging"
)

// runDivide divides the operands given with -u and -v.
func (a *Application) runDivide(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	u, err := parseOperand("u", a.Config.Dividend)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	v, err := parseOperand("v", a.Config.Divisor)
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	strategy, err := a.Registry.Get(a.Config.Strategy)
	if err != nil {
		return presenter.HandleError(apperrors.NewConfigError("%v", err), 0, a.ErrWriter)
	}

	_, span := otel.Tracer("github.com/agbru/longdiv/internal/app").Start(ctx, "divide")
	defer span.End()
	span.SetAttributes(
		attribute.String("strategy", strategy.Name()),
		attribute.Int("m", len(u)),
		attribute.Int("n", len(v)))

	res, err := divide(division.NewDivider(division.WithStrategy(strategy)), u, v, !a.Config.NoRemainder)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, division.Reason(err))
		a.logger.Error("division rejected", err,
			logging.String("reason", division.Reason(err)),
			logging.Int("m", len(u)),
			logging.Int("n", len(v)))
		field := "v"
		if errors.Is(err, division.ErrDividendShorterThanDivisor) {
			field = "u"
		}
		return presenter.HandleError(apperrors.ValidationError{
			Field:   field,
			Message: err.Error(),
			Cause:   apperrors.DivisionError{Strategy: strategy.Name(), Cause: err},
		}, res.Duration, a.ErrWriter)
	}
	res.Strategy = strategy.Name()

	if a.Config.Quiet {
		cli.DisplayQuietDivision(res, out)
	} else {
		cli.DisplayDivision(res, out)
	}
	return apperrors.ExitSuccess
}

func parseOperand(field, s string) ([]arith.Digit, error) {
	digits, err := diag.Parse(s)
	if err != nil {
		return nil, apperrors.ValidationError{
			Field:   field,
			Message: err.Error(),
			Cause:   apperrors.WrapError(err, "parsing -%s", field),
		}
	}
	return digits, nil
}

// divide runs one division into freshly sized buffers. Without a remainder
// the r buffer is nil.
func divide(d *division.Divider, u, v []arith.Digit, withRemainder bool) (cli.DivisionOutput, error) {
	res := cli.DivisionOutput{U: u, V: v}
	q := make([]arith.Digit, max(len(u)-len(v)+1, 1))
	var r []arith.Digit
	if withRemainder {
		r = make([]arith.Digit, max(len(v), 1))
	}

	start := time.Now()
	err := d.Divide(q, r, u, v)
	res.Duration = time.Since(start)
	if err != nil {
		return res, err
	}
	res.Q = q[:len(u)-len(v)+1]
	if r != nil {
		res.R = r[:len(v)]
	}
	return res, nil
}
