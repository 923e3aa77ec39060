// Package app wires configuration, logging, and the execution modes of the
// u128calc binary into a single Application type with process exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/u128calc/internal/cli"
	"github.com/agbru/u128calc/internal/config"
	apperrors "github.com/agbru/u128calc/internal/errors"
	"github.com/agbru/u128calc/internal/logging"
	"github.com/agbru/u128calc/internal/tui"
	"github.com/agbru/u128calc/internal/ui"
	"github.com/agbru/u128calc/internal/uint128"
)

// Application represents the u128calc application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "u128calc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	if app.Log == nil {
		app.Log = logging.NewLogger(errWriter, "app")
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Serve != "":
		return a.runServe(ctx)
	case a.Config.REPL:
		return a.runREPL()
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Verify:
		return a.runVerify(ctx, out)
	default:
		return a.runCalculate(ctx, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	strategies := make([]string, 0, len(uint128.Multipliers()))
	for _, m := range uint128.Multipliers() {
		strategies = append(strategies, m.Name())
	}
	if err := cli.GenerateCompletion(out, a.Config.Completion, strategies); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive calculator session.
func (a *Application) runREPL() int {
	r := cli.NewREPL(cli.REPLConfig{
		DefaultStrategy: a.Config.Strategy,
		RandomCases:     a.Config.RandomCases,
		Seed:            a.Config.Seed,
	})
	r.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive verification dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancel := a.withLifecycle(ctx)
	defer cancel()

	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
