package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/u128calc/internal/cli"
	apperrors "github.com/agbru/u128calc/internal/errors"
	"github.com/agbru/u128calc/internal/logging"
	"github.com/agbru/u128calc/internal/orchestration"
	"github.com/agbru/u128calc/internal/uint128"
)

// withLifecycle derives a context bounded by the configured timeout and
// canceled on SIGINT or SIGTERM.
func (a *Application) withLifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runCalculate orchestrates the execution of a single CLI calculation.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	operandA, err := cli.ParseOperand("a", a.Config.OperandA)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Shift operations take a single operand; -b stays optional for them.
	var operandB uint128.Uint128
	if a.Config.Op == "mul" || a.Config.Op == "add" {
		operandB, err = cli.ParseOperand("b", a.Config.OperandB)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorConfig
		}
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	start := time.Now()
	result, err := a.evaluate(ctx, operandA, operandB)
	duration := time.Since(start)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, duration, out)
	}

	a.Log.Debug("calculation complete",
		logging.String("op", a.Config.Op),
		logging.String("result", result.Hex()),
		logging.String("duration", duration.String()))

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, result, a.Config.Op, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// evaluate applies the configured operation to the parsed operands.
func (a *Application) evaluate(ctx context.Context, x, y uint128.Uint128) (uint128.Uint128, error) {
	if err := ctx.Err(); err != nil {
		return uint128.Zero, err
	}

	switch a.Config.Op {
	case "mul":
		return a.multiply(x, y)
	case "add":
		return x.Add(y), nil
	case "shl":
		return x.Lsh(a.Config.Shift), nil
	case "shr":
		return x.Rsh(a.Config.Shift), nil
	default:
		return uint128.Zero, apperrors.NewConfigError("unknown operation %q", a.Config.Op)
	}
}

// multiply computes the product with the configured strategy. Operand pairs
// that fit in 64 bits go through the selected multiplier so the portable
// implementation is reachable from the command line; wider operands use the
// full 128-bit product.
func (a *Application) multiply(x, y uint128.Uint128) (uint128.Uint128, error) {
	m, err := orchestration.SelectMultiplier(a.Config)
	if err != nil {
		return uint128.Zero, apperrors.NewConfigError("%v", err)
	}
	if x.Hi() == 0 && y.Hi() == 0 {
		return m.Product(x.Lo(), y.Lo()), nil
	}
	return x.Mul(y), nil
}
