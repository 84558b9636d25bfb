// Package tui is the bubbletea front end of the user-list client.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-list/internal/logger"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoClientServices = errors.New("client services are not provided")

type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ConfigLoader == nil || services.UserListController == nil {
		return nil, errNoClientServices
	}
	if notifier == nil {
		notifier = NewNotifier(logger)
	}

	return &TUI{
		services:  services,
		notifier:  notifier,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the user-list widget until the user quits or ctx is done.
// Quitting from the keyboard yields ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	model := newWidgetModel(ctx, t.services, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.notifier.Attach(program)
	defer t.notifier.Attach(nil)

	t.logger.Info().Msg("user-list widget started")
	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(widgetModel); ok && result.quitting {
		return ErrUserQuit
	}
	return nil
}
