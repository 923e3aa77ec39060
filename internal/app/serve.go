package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	apperrors "github.com/agbru/u128calc/internal/errors"
	"github.com/agbru/u128calc/internal/logging"
	"github.com/agbru/u128calc/internal/server"
)

// runServe starts the HTTP API and blocks until the context is canceled or
// the listener fails. The configured timeout does not apply here; a server
// runs until it is told to stop.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srv := server.New(a.Config.Serve, logging.NewLogger(a.ErrWriter, "server"))
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
