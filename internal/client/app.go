package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/tui"
)

var errNoUI = errors.New("ui is not provided")

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui UI

	// closed after the UI exits, in order
	closers []io.Closer

	logger *logger.Logger
}

// NewApp wires ui into an App. closers, such as the client log file, are
// released when Run returns; nil closers are skipped.
func NewApp(ui UI, logger *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	app := &App{ui: ui, logger: logger}
	for _, c := range closers {
		if c != nil {
			app.closers = append(app.closers, c)
		}
	}
	return app, nil
}

// Run blocks until the user quits or the process receives SIGTERM/SIGINT.
// Quitting from the keyboard is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err := a.run(ctx)
	if closeErr := a.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

func (a *App) close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close resource: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) run(ctx context.Context) error {
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Err(err).Msg("client interrupted")
		return nil
	default:
		a.logger.Error().Err(err).Msg("client run error")
		return fmt.Errorf("run ui: %w", err)
	}
}
